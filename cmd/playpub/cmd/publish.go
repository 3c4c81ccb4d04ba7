// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/playpub/pkg/core"
)

// newPublisher prepares a publisher for the current package, or exits
func newPublisher(ctx context.Context, in *cliOptionInputs) (*core.Publisher, bool) {
	packageName, err := in.packageName()
	if err != nil {
		usageFatalf("%v", err)
		return nil, false
	}
	opts, err := in.coreOpts()
	if err != nil {
		usageFatalf("%v", err)
		return nil, false
	}
	client, err := newPublisherClient(ctx, in)
	if err != nil {
		wrapFatalln("create publisher client", err)
		return nil, false
	}
	initMetrics(packageName)
	return core.NewPublisher(client, opts...), true
}

// exitOnOutcome reports the outcome of a publishing operation, and exits with a non-zero code on failure
func exitOnOutcome(operation string, outcome core.Outcome, err error) {
	reportMetrics()
	if code := outcome.ExitCode(); code != 0 {
		wrapFatalWithCodef(code, "%s: %s: %v", operation, outcome, err)
		return
	}
	infoLogger.Printf("%s: %s", operation, outcome)
}
