// Package ecs provides ECS adapters for corridor's navigation event system.
//
// The primary adapter is [NewDonburiSink], which bridges corridor navigation
// events (overlay open/close, pinch edges) into a [Donburi] world as typed
// events. Subscribe to [NavigationEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
