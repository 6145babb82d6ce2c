package main

import "bms-asset-manager/cmd"

func main() {
	cmd.Execute()
}
