// Package actor implements the sync controller that owns the visible state.
//
// All intents go through one worker goroutine started by Run, so no two state
// mutations interleave. Connectivity changes are consumed by the same worker:
// a transition to offline flips DataLoaded.NetworkAvailable in place, a
// transition to online enqueues RefreshData once.
//
// Everything the presentation layer reads is exposed as an observable value
// (State, Favorites, Loading, Selected*, Preferences) plus the three pagers
// and a channel of transient notices.
//
// Typical Usage
//
//	a := actor.New(svc, overlay, monitor, store, actor.Options{PageSize: 10}, logger)
//	go a.Run(ctx)
//	_ = a.Dispatch(ctx, actor.LoadData{})
//	for st := range a.State().Subscribe(ctx) { ... }
package actor
