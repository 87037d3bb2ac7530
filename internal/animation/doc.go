// Package animation paints the 300×200 scene and drives its frame loop.
//
// Clear wipes the surface and paints the radial background. Draw paints one
// frame for an elapsed time in milliseconds: three drifting balls, two
// spinning squares, a spiral and a pulsing circle. SpeedMultiplier turns the
// counter into a motion factor between 1 and 3, so the scene speeds up as the
// count moves away from zero in either direction.
//
// Loop is a two-state machine held by value in the Bubble Tea model:
//
//	idle    --Start-->  running   clears, emits the first FrameMsg at once
//	running --Frame-->  running   draws, schedules the next FrameMsg after FrameDelay
//	running --Stop--->  idle      clears, schedules nothing
//	running --Start-->  running   restart: clears, begins a new chain
//
// While running exactly one frame command is outstanding. Each FrameMsg
// carries the loop id and a generation tag. Start and Stop bump the tag, so
// a frame scheduled before a restart or stop is dropped when it arrives
// instead of forking a second chain. Frames for another loop id are ignored.
package animation
