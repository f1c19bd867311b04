// Command studylife is a terminal client for the study platform:
// account management, personal notes and quizzes with progress
// tracking, all against the remote backend.
package main

func main() {
	Execute()
}
