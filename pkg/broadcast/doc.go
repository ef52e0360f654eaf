// Package broadcast delivers typed values to interested parties.
//
// Observers is the synchronous flavour: handlers run in registration order on
// the notifying goroutine, which preserves event ordering for callers that
// depend on it.
//
//	var obs broadcast.Observers[string]
//	remove := obs.Add(func(s string) { fmt.Println(s) })
//	obs.Notify("hello")
//	remove()
//
// MemoryBroadcaster is the asynchronous flavour: each subscriber receives
// messages on a buffered channel and is dropped when it cannot keep up, so a
// slow consumer never blocks the sender.
//
//	b := broadcast.NewMemoryBroadcaster[string](16)
//	defer b.Close()
//	sub := b.Subscribe(ctx)
//	_ = b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//	msg := <-sub.Receive(ctx)
package broadcast
