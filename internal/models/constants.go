package models

const (
	DefaultTitle        = "Study Note"
	SummaryErrorText    = "Error generating main summary."
	FallbackOption      = "Other"
	FallbackQuestionFmt = "Concept check: What refers to '%s'?"
	QuestionLabel       = "question:"
	ThinkTag            = `(?s)<think>.*?</think>`
)

var (
	SummaryPromptTemplate = `Summarize the following text as a single fluent paragraph of between %d and %d words.
Use your own phrasing and do not add facts that are not in the text. Answer only with the summary.

<text>
%s
</text>
`

	// answer-aware question generation, same input layout as the t5 qg models
	QuestionPromptTemplate = `Write one question about the context whose answer is exactly the given answer.
Answer only with the question, prefixed with "question:".

answer: %s  context: %s
`
)
