// Package ecs provides ECS adapters for swipe detectors.
//
// The primary adapter is [NewDonburiConfig], which returns a [swipe.Config]
// whose callbacks publish [SwipeEvent] values into a [Donburi] world.
// Subscribe to [SwipeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	det := swipe.New(surface, swipe.DetectPlatform(), ecs.NewDonburiConfig(world, "gallery"))
//	ecs.SwipeEventType.Subscribe(world, onSwipe)
//	// each frame:
//	ecs.SwipeEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
