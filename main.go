package main

import "github.com/harssh120/AlphaFit/cmd/alphafit"

func main() {
	alphafit.Execute()
}
