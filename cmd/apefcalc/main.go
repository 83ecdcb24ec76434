// Command apefcalc projects the daily growth and fees of an Apef Trust investment.
package main

func main() {
	Execute()
}
