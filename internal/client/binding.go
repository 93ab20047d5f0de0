package client

// InputField is the text entry anchor.
type InputField interface {
	Value() string
	Clear()
}

// SubmitSource is the form anchor; it fires the registered callback once
// per user submission.
type SubmitSource interface {
	OnSubmit(func())
}

// MessageList is the rendered transcript anchor.
type MessageList interface {
	Append(Message)
}

// Binding collects the three UI anchors the controller attaches to. The
// client never creates these; the surrounding surface provides them.
type Binding struct {
	Input InputField
	Form  SubmitSource
	List  MessageList
}
