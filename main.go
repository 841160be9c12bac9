// main.go
package main

import "yatri-auth/cmd"

func main() {
	cmd.Execute()
}
