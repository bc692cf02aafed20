package action

type ForegroundEntered struct{}
type BackgroundEntered struct{}
type WillTerminate struct{}

type AudioInterrupted struct{}
type AudioInterruptEnded struct{}
type AudioEngaged struct{}

func (ForegroundEntered) Kind() Kind { return "lifecycle.foregroundEntered" }
func (BackgroundEntered) Kind() Kind { return "lifecycle.backgroundEntered" }
func (WillTerminate) Kind() Kind     { return "lifecycle.willTerminate" }

func (AudioInterrupted) Kind() Kind    { return "audioSession.audioInterrupted" }
func (AudioInterruptEnded) Kind() Kind { return "audioSession.audioInterruptEnded" }
func (AudioEngaged) Kind() Kind        { return "audioSession.audioEngaged" }

func (ForegroundEntered) isAction()   {}
func (BackgroundEntered) isAction()   {}
func (WillTerminate) isAction()       {}
func (AudioInterrupted) isAction()    {}
func (AudioInterruptEnded) isAction() {}
func (AudioEngaged) isAction()        {}
