package main

import (
	ver "github.com/openkube/watchtail/cmd"
	"github.com/openkube/watchtail/cmd/watchtail/cmd"
)

var (
	version    = "dev"
	commit     = "main"
	versionStr = version + " (" + commit + ")"
)

func main() {
	ver.SetVersion(versionStr)
	cmd.Execute()
}
