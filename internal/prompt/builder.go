// Package prompt builds the natural-language prompts sent to the model.
// Every function is pure: the same inputs always yield the same prompt.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"dsa-tutor/internal/domain"
)

const noPriorTopics = "None"

// PriorTopics renders previously covered topics for inclusion in a prompt.
func PriorTopics(prior []domain.HistoryEntry) string {
	if len(prior) == 0 {
		return noPriorTopics
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// topic names such as "Vector<int>" reach the model as typed
	enc.SetEscapeHTML(false)
	if err := enc.Encode(prior); err != nil {
		return noPriorTopics
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

const contentTemplate = `
You are a Data Structures and Algorithms expert creating comprehensive educational content for the topic: "%[1]s".

Additional details provided: %[2]s

Difficulty level: %[3]s

Previously covered topics (for reference): %[4]s

GUIDELINES FOR EXCELLENT CONTENT:

1. STRUCTURE:
   - Start with a clear, concise introduction that explains what %[1]s is and why it's important
   - Include a "Prerequisites" section listing concepts students should understand first
   - Organize content with clear headings and subheadings
   - Conclude with a summary and "Next Steps" section

2. EXPLANATION:
   - Explain concepts using both formal definitions and intuitive analogies
   - Use real-world examples that demonstrate practical applications
   - Include visual descriptions (e.g., how a tree structure would look, how an algorithm processes data)
   - Explain the "why" behind each concept, not just the "what" and "how"

3. CODE EXAMPLES:
   - Provide clean, well-commented Python implementations
   - Include step-by-step explanations of how the code works
   - Show both naive and optimized approaches when relevant
   - Include example usage with sample inputs and outputs

4. COMPLEXITY ANALYSIS:
   - Provide detailed time and space complexity analyses
   - Explain the derivation of Big O notation clearly
   - Compare efficiency with alternative approaches
   - Discuss best, average, and worst-case scenarios

5. COMMON PITFALLS:
   - Identify common mistakes and misconceptions
   - Provide debugging strategies for typical errors
   - Suggest best practices for implementation

Format the response in markdown with proper code blocks, headings, lists, and emphasis where appropriate.
Ensure code examples are complete, runnable, and thoroughly commented.
`

// ContentPrompt asks for the structured markdown lesson.
func ContentPrompt(req domain.TopicRequest, prior []domain.HistoryEntry) string {
	return fmt.Sprintf(contentTemplate,
		req.TopicName,
		req.TopicDescription,
		req.DifficultyLevel,
		PriorTopics(prior),
	)
}

// QuestionCount is the number of quiz questions requested from the model.
const QuestionCount = 10

const quizTemplate = `
Create %[2]d high-quality multiple-choice questions to test understanding of the Data Structures and Algorithms topic: "%[1]s".

Difficulty level: %[3]s

GUIDELINES FOR EFFECTIVE QUESTIONS:

1. QUESTION DISTRIBUTION:
   - 3 questions testing recall and basic understanding
   - 4 questions requiring application of concepts
   - 3 questions demanding analysis or evaluation

2. QUESTION QUALITY:
   - Ensure questions test conceptual understanding, not just memorization
   - Include questions about time/space complexity analysis
   - Include questions about edge cases and optimizations
   - Include questions about real-world applications
   - Include at least one question comparing this topic with related concepts

3. ANSWER CHOICES:
   - Make all options plausible (no obviously wrong answers)
   - Include common misconceptions as incorrect options
   - Ensure only one answer is clearly correct
   - Make options of similar length and detail

4. EXPLANATIONS:
   - Provide thorough explanations for why the correct answer is right
   - Explain why each incorrect option is wrong
   - Reference relevant concepts from the educational content

Return the questions in the following JSON format:
[
  {
    "question": "Clear, specific question text",
    "options": ["A. Option A", "B. Option B", "C. Option C", "D. Option D"],
    "correctAnswer": "A",
    "explanation": "Detailed explanation of why A is correct and why B, C, and D are incorrect"
  },
  ...
]

Ensure the JSON is valid and properly formatted with exactly %[2]d questions.
`

// QuizPrompt asks for the multiple-choice quiz as a JSON array.
func QuizPrompt(req domain.TopicRequest) string {
	return fmt.Sprintf(quizTemplate, req.TopicName, QuestionCount, req.DifficultyLevel)
}

// PlanWeeks is the length of the requested study plan.
const PlanWeeks = 4

const progressionTemplate = `
Based on the Data Structures and Algorithms topic "%[1]s", create a weekly progression plan for students.

Previous topics covered (if any): %[2]s

Create a %[3]d-week study plan that:
1. Builds foundational knowledge in week 1
2. Introduces advanced concepts in week 2
3. Focuses on practical applications in week 3
4. Covers optimization and related topics in week 4

For each week, suggest:
- Topics to study
- Practice problems (2-3 specific examples)
- Learning objectives

Return the plan in JSON format:
{
  "weeklyPlan": [
    {
      "week": 1,
      "focus": "Foundations",
      "topics": ["Topic 1", "Topic 2", ...],
      "practiceProblems": ["Problem description 1", "Problem description 2", ...],
      "objectives": ["Objective 1", "Objective 2", ...]
    },
    ...
  ],
  "recommendedNextTopics": ["Topic 1", "Topic 2", "Topic 3"]
}
`

// ProgressionPrompt asks for the study plan as a JSON object.
func ProgressionPrompt(req domain.TopicRequest, prior []domain.HistoryEntry) string {
	return fmt.Sprintf(progressionTemplate, req.TopicName, PriorTopics(prior), PlanWeeks)
}
