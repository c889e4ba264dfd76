package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestNodeDependencies checks the injection graph statically: every node must
// declare exactly the dependencies it resolves, and resolve everything it
// declares.
func TestNodeDependencies(t *testing.T) {
	graft.AssertDepsValid(t, "../../internal")
}
