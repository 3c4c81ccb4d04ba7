package core

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// opencensus stats collection goroutine
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}
