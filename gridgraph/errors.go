package gridgraph

import "errors"

var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("gridgraph: width and height must be positive")
	// ErrInvalidCoordinate indicates an (x,y) outside [0,Width)×[0,Height).
	ErrInvalidCoordinate = errors.New("gridgraph: coordinate out of bounds")
	// ErrInvalidNode indicates a node id outside the grid arena.
	ErrInvalidNode = errors.New("gridgraph: node id out of range")
	// ErrSelfLoop indicates an edge toggle between a node and itself.
	ErrSelfLoop = errors.New("gridgraph: self-loop edges are not supported")
	// ErrUnknownConnectivity indicates an unsupported connectivity pattern.
	ErrUnknownConnectivity = errors.New("gridgraph: unknown connectivity")
	// ErrParentCycle indicates parent links that never reach a root.
	ErrParentCycle = errors.New("gridgraph: parent links form a cycle")
)
