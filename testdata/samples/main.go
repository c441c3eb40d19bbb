package main

// main prints a greeting.
func main() {
	/* inline block */
	println("/* not a comment */")
}
