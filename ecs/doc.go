// Package ecs provides ECS adapters for panzoom engine notifications.
//
// The primary adapter is [NewDonburiStore], which bridges transform and
// activation notifications into a [Donburi] world as typed events.
// Subscribe to [TransformEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
