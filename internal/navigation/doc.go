// Package navigation tracks the screens visited during a session.
//
// A History keeps a bounded sequence of records with a cursor at the newest
// one. A Controller owns one History per session, suppresses repeated
// navigation to the current screen and asks a host Navigator to perform the
// actual transition after the history has been updated:
//
//	h := navigation.NewHistory[Params](navigation.DefaultMaxHistory)
//	nav := navigation.NewController[Params](h, host)
//	nav.Init() // seed from the host's current route
//	_ = nav.NavigateTo("PIX", Params{})
//	ok, _ := nav.GoBack()
//
// Nothing here is safe for concurrent use; all calls are expected to come
// from the UI event loop.
package navigation
