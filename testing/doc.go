// Package testing provides test utilities for the election library.
//
// It offers scripted doubles for the data-provider and solver interfaces
// plus a logger that writes to the testing.T log, following Go's
// convention of a dedicated testing package (similar to
// net/http/httptest).
//
// Example usage:
//
//	import (
//	    "testing"
//	    electiontest "github.com/blob-chain/substrate/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    data := electiontest.NewDataProvider[string](2)
//	    data.Voters = voters
//	    data.Targets = targets
//	    // wire data into the component under test
//	}
package testing
