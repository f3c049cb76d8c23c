// messages.go contains message templates for the terminal front-end.

package cli

// Home messages.
const (
	msgWelcome = `QUIZZIFY

Rules:
  🏁 Your score is shown at the end of the quiz.
  🔀 Questions are asked in a random order.
  ⏭  You can skip a question, it counts as incorrect.

Type /quiz to start a quiz or /help to see every command.`

	msgHelp = `Commands:
  /quiz [subject]   start a quiz, optionally limited to one subject
  /all [subject]    show the question bank
  /subjects         list subjects in use
  /show N           show question #N
  /add              create a new question
  /edit N           edit question #N
  /delete N         delete question #N
  /help             show this help
  /quit             exit`

	msgGoodbye        = "Goodbye!"
	msgUnknownCommand = "Unknown command. Type /help to see the list of commands."
	msgInternalError  = "Something went wrong. Please try again."
)

// Question bank messages.
const (
	msgEmptyBank          = "Empty Question Bank!\nNo questions added yet. Type /add to create your first question."
	msgNoSubjectQuestions = "There are no questions with subject %q."
	msgNoSubjects         = "No subjects yet. Give a question a subject to group it."
	msgUseShow            = "Usage: /show N, where N is a question number from /all."
	msgUseEdit            = "Usage: /edit N, where N is a question number from /all."
	msgUseDelete          = "Usage: /delete N, where N is a question number from /all."
	msgQuestionNotFound   = "Question #%d does not exist."
	msgQuestionDeleted    = "🗑 Question #%d deleted."
)

// Quiz messages.
const (
	msgAddQuestionsFirst = "Add Questions to Bank?\nYour question bank is currently empty. You need to add questions before you can start a quiz. Type /add to create one."
	msgQuizHelp          = "Type an option number to select it, \"next\" (or just Enter) to continue, /stop to end the quiz."
	msgInvalidOption     = "There is no option %s. Choose a number from 1 to %d."
	msgQuizCompleted     = "🎉 Quiz Completed!"
	msgQuizStopped       = "Quiz stopped."
	msgButtonNext        = "Next"
	msgButtonViewScore   = "View Score"
)

// Editor messages.
const (
	msgEditorHelp = `Editor commands:
  text <question>      set the question text
  subject [subject]    set or clear the subject
  option N <text>      set the text of option N
  add                  add an empty option
  remove N             remove option N
  correct N            mark option N as the correct answer
  show                 show the draft
  save                 save the question
  cancel               discard the draft`

	msgAddQuestion       = "Add Question"
	msgEditQuestion      = "Edit Question #%d"
	msgOptionLimit       = "A question can have at most %d options."
	msgLastOption        = "A question needs at least one option."
	msgInvalidDraftIndex = "There is no option %s. The draft has %d options."
	msgNotSavable        = "The question cannot be saved yet:"
	msgMissingText       = "  - the question text is empty"
	msgMissingOption     = "  - option %d is empty"
	msgQuestionSaved     = "💾 Question #%d saved."
	msgEditCancelled     = "Changes discarded."
)
