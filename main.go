// SPDX-License-Identifier: MPL-2.0

package main

import cmd "soundport-cli/cmd/soundport"

func main() {
	cmd.Execute()
}
