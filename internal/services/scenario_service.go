package services

import "strings"

const (
	scenarioTeaching = "You are in the middle of teaching an important lesson when a student " +
		"suddenly starts loudly criticizing your teaching method in front of the entire class, " +
		"accusing you of being unfair and biased. Several other students begin nodding in " +
		"agreement, and the atmosphere becomes tense and uncomfortable. You have 10 minutes " +
		"left in the class and an important topic to cover before the upcoming exam."

	scenarioHealthcare = "You are working in a busy hospital ward during a night shift. A patient's family member " +
		"approaches you with extreme anger, blaming you for a delayed medication dose that " +
		"has caused their relative discomfort. They raise their voice, attracting attention from " +
		"other patients and staff. The family member threatens to file a complaint and questions " +
		"your competence. Meanwhile, you have other critical patients requiring immediate attention."

	scenarioManagement = "You are leading a team project with a tight deadline. Two of your team members are " +
		"engaged in a heated argument during a critical meeting, each blaming the other for " +
		"missed deadlines and poor quality work. The conflict escalates, with personal attacks " +
		"being exchanged. The rest of the team looks uncomfortable, and the project deadline " +
		"is in 48 hours. Your supervisor is expecting a status update in 2 hours."

	scenarioGeneric = "You have just presented your work to a group of colleagues and stakeholders. " +
		"A senior colleague publicly criticizes your approach, pointing out what they perceive " +
		"as fundamental flaws in your methodology. Their tone is condescending, and several " +
		"others in the room begin questioning your decisions. You spent weeks preparing this " +
		"work and believe in its value, but now you're facing public scrutiny and doubt."
)

// Five reflective questions, one per dimension: emotional identification,
// regulation, resolution strategy, coping, learning. Order is meaningful.
var reflectiveQuestions = []string{
	"What emotions would you feel in this situation, and why? Describe the intensity and sequence of your emotional reactions.",
	"How would you manage your emotions before responding to the situation? What strategies would you use to stay composed?",
	"How would you resolve this conflict or address this challenge? Describe your approach and the reasoning behind it.",
	"How would you cope with the stress and pressure of this situation? What internal and external resources would you draw upon?",
	"What would you learn from this experience, and how might it affect your future behavior in similar situations?",
}

type ScenarioServiceInterface interface {
	GenerateScenario(age int, gender string, profession string) string
	GenerateQuestions(scenario string) []string
}

type ScenarioService struct{}

func NewScenarioService() ScenarioServiceInterface {
	return &ScenarioService{}
}

// GenerateScenario picks one of four fixed scenario texts by matching the
// profession against keyword groups in priority order. Age and gender are
// part of the contract but do not currently influence the selection.
func (s *ScenarioService) GenerateScenario(age int, gender string, profession string) string {
	p := strings.ToLower(profession)

	switch {
	case strings.Contains(p, "teacher") || strings.Contains(p, "lecturer") || strings.Contains(p, "educator"):
		return scenarioTeaching
	case strings.Contains(p, "nurse") || strings.Contains(p, "doctor") || strings.Contains(p, "physician"):
		return scenarioHealthcare
	case strings.Contains(p, "manager") || strings.Contains(p, "lead") || strings.Contains(p, "director"):
		return scenarioManagement
	default:
		return scenarioGeneric
	}
}

// GenerateQuestions returns the five reflective questions. The set is the
// same for every scenario.
func (s *ScenarioService) GenerateQuestions(scenario string) []string {
	questions := make([]string, len(reflectiveQuestions))
	copy(questions, reflectiveQuestions)
	return questions
}
