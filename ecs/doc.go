// Package ecs provides ECS adapters for quickswipe gesture events.
//
// The primary adapter is [NewDonburiStore], which publishes gesture lifecycle
// events (started, ended, cancelled, finished, handoff) into a [Donburi]
// world as typed events. Subscribe to [GestureEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	router, err := quickswipe.NewRouter(quickswipe.Options{Store: store, ...}, sessionFor)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
