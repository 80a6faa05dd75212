package main

// actionResultMsg carries a status message produced by an action, shown as
// a toast.
type actionResultMsg struct {
	ID   string
	Info string
}

// actionErrMsg reports a failed action invocation.
type actionErrMsg struct {
	ID  string
	Err error
}
