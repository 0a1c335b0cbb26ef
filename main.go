// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// arup uploads files and folders to Arweave
package main

import "arup/cmd"

func main() {
	cmd.Execute()
}
