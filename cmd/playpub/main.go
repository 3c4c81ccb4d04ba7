// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/playpub/cmd/playpub/cmd"
)

func main() {
	cmd.Execute()
}
