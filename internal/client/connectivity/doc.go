// Package connectivity reports whether the catalog backend is reachable.
//
// A Monitor is a subscribable boolean stream: each subscriber gets the current
// value immediately and then every change. Two implementations are provided:
// PingMonitor pings the backend on an interval, Switch is driven by hand.
package connectivity
