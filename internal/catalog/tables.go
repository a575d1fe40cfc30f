package catalog

// Table is a read-only mapping from a card label to a text fragment
type Table struct {
	entries map[string]string
}

func newTable(entries map[string]string) Table {
	return Table{entries: entries}
}

// Lookup returns the fragment for label
func (t Table) Lookup(label string) (string, bool) {
	v, ok := t.entries[label]
	return v, ok
}

// LookupPtr is Lookup for an optional label
func (t Table) LookupPtr(label *string) (string, bool) {
	if label == nil {
		return "", false
	}
	return t.Lookup(*label)
}

// Has reports whether label is a known key
func (t Table) Has(label string) bool {
	_, ok := t.entries[label]
	return ok
}

// Len returns the number of entries
func (t Table) Len() int {
	return len(t.entries)
}

// Mentor voices used by the generator
var MentorTones = newTable(map[string]string{
	"The Archivist":   "formal and detached, with historical references",
	"The Sage":        "contemplative and wise, with cross-disciplinary insights",
	"The Guide":       "supportive and instructive, with clear examples",
	"The Inventor":    "creative and unconventional, with innovative perspectives",
	"The Storyteller": "narrative and engaging, with compelling analogies",
})

// Method structures used by the generator
var MethodStructures = newTable(map[string]string{
	"SCAMPER":          "using substitution, combination, adaptation, modification, repurposing, elimination, and reversal",
	"First Principles": "breaking down concepts to fundamental truths and building up from there",
	"Chain-of-Thought": "reasoning step by step through logical connections",
	"SWOT Analysis":    "evaluating strengths, weaknesses, opportunities, and threats",
	"Socratic Method":  "examining through progressive questioning to stimulate critical thinking",
})

// Modifier effects used by the generator
var ModifierEffects = newTable(map[string]string{
	"Token Limit":       "being concise and direct",
	"Use Metaphor":      "incorporating extended metaphors",
	"Concrete Examples": "providing specific examples",
	"Data Driven":       "including numerical data and statistics",
	"Opposing Views":    "presenting multiple perspectives",
})

// Mentor styles used by the mock generator
var MentorStyles = newTable(map[string]string{
	"The Archivist":   "In examining the historical context and precedent, we observe a pattern of logical progression that leads to a formal conclusion.",
	"The Sage":        "Consider, if you will, the deeper implications. When we look beyond the surface, we find connections that transcend the obvious.",
	"The Guide":       "Let me walk you through this step by step. First, we need to establish our goal, then identify the path forward.",
	"The Inventor":    "What if we approach this from an entirely different angle? Let's reimagine the constraints as opportunities.",
	"The Storyteller": "Imagine a world where this problem has already been solved. What tale would we tell about how it happened?",
})

// Method patterns used by the mock generator
var MethodPatterns = newTable(map[string]string{
	"SCAMPER":          "We could substitute X with Y, combine it with Z, adapt it by..., modify the core idea, put it to another use, eliminate the unnecessary, and reverse the traditional approach.",
	"First Principles": "Breaking this down to its fundamental truths: First, we know that... Second, it follows that... Therefore...",
	"Chain-of-Thought": "Let's reason through this sequentially. Initially, we observe... This leads us to consider... Which implies... Resulting in...",
	"SWOT Analysis":    "Strengths: clear advantage in... Weaknesses: potential gaps in... Opportunities: emerging possibilities for... Threats: challenges from...",
	"Socratic Method":  "What would happen if...? How does this relate to...? Why might this be the case? What evidence supports this conclusion?",
})

// Modifier sentences used by the mock generator
var ModifierSentences = newTable(map[string]string{
	"Token Limit":       "Concisely stated, the core concept is...",
	"Use Metaphor":      "This is like a garden where ideas bloom with proper nurturing.",
	"Concrete Examples": "Consider these three examples: First, when Tesla designed the Model S... Second, when SpaceX developed reusable rockets... Third, when Apple created the iPhone...",
	"Data Driven":       "According to recent studies, 78% of users prefer... The data shows a 42% increase in...",
	"Opposing Views":    "Some argue that... However, others maintain that... A middle ground might be...",
})

// Mentor feedback used by the evaluator
var MentorFeedback = newTable(map[string]string{
	"The Archivist":   "Consider a more formal structure with clear citations of precedent.",
	"The Sage":        "Deepen your connections across disciplines for more profound insights.",
	"The Guide":       "Provide clearer pathways and examples to lead the reader.",
	"The Inventor":    "Explore more unconventional perspectives and innovative solutions.",
	"The Storyteller": "Develop a stronger narrative arc to engage the reader.",
})

// Method feedback used by the evaluator
var MethodFeedback = newTable(map[string]string{
	"SCAMPER":          "Apply more substitution and combination techniques.",
	"First Principles": "Break down your reasoning to more fundamental elements.",
	"Chain-of-Thought": "Make each logical step more explicit in your reasoning.",
	"SWOT Analysis":    "Balance your analysis across all four SWOT quadrants.",
	"Socratic Method":  "Deepen your questioning to stimulate critical thinking.",
})
