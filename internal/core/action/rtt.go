package action

type TurnOnRtt struct{}

type UpdateRttMaximized struct {
	Maximized bool
}

// SendRttMessage sends real-time text. Non-final messages are partial updates.
type SendRttMessage struct {
	Message string
	IsFinal bool
}

type RttSendFailed struct {
	Err error
}

func (TurnOnRtt) Kind() Kind          { return "rtt.turnOn" }
func (UpdateRttMaximized) Kind() Kind { return "rtt.updateMaximized" }
func (SendRttMessage) Kind() Kind     { return "rtt.sendMessage" }
func (RttSendFailed) Kind() Kind      { return "rtt.sendFailed" }

func (TurnOnRtt) isAction()          {}
func (UpdateRttMaximized) isAction() {}
func (SendRttMessage) isAction()     {}
func (RttSendFailed) isAction()      {}
