package scaffold

// Reporter receives progress updates during a run. Start is called once,
// Update before each phase and step, and exactly one of Succeed or Fail at
// the end.
type Reporter interface {
	Start(msg string)
	Update(msg string)
	Succeed(msg string)
	Fail(msg string)
}

type nopReporter struct{}

func (nopReporter) Start(string)   {}
func (nopReporter) Update(string)  {}
func (nopReporter) Succeed(string) {}
func (nopReporter) Fail(string)    {}
