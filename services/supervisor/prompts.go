package supervisor

import (
	"fmt"
	"strings"
)

// Prompt is a system/user message pair for a single completion call.
type Prompt struct {
	System string
	User   string
}

// GenerationContext carries the intern-facing fields the generators
// need. It replaces the loose profile dictionaries the generators used
// to accept.
type GenerationContext struct {
	FullName        string
	Major           string
	University      string
	CareerInterests string
}

type industryContext struct {
	areas  string
	skills string
	roles  string
}

// Per-industry framing injected into every supervisor prompt.
var industryContexts = map[string]industryContext{
	"Fintech": {
		areas:  "financial technology, digital banking, payment systems, blockchain, or investment technologies",
		skills: "financial analysis, data interpretation, regulatory compliance, digital payment systems, blockchain technologies",
		roles:  "financial analyst, payment systems specialist, compliance officer, digital banking consultant",
	},
	"Healthcare": {
		areas:  "healthcare administration, medical informatics, patient care technologies, telehealth, or health analytics",
		skills: "healthcare data analysis, patient information management, medical terminology, healthcare compliance, telehealth systems",
		roles:  "healthcare data analyst, medical records specialist, telehealth coordinator, healthcare compliance officer",
	},
	"Marketing": {
		areas:  "digital marketing, brand strategy, consumer analytics, social media management, or content creation",
		skills: "market research, campaign analysis, social media strategy, content creation, SEO/SEM, consumer behavior analysis",
		roles:  "marketing analyst, social media specialist, brand strategist, content marketer",
	},
	"Technology & IT": {
		areas:  "software development, network administration, cybersecurity, data engineering, or cloud computing",
		skills: "programming, system administration, security analysis, database management, cloud architecture",
		roles:  "software developer, network administrator, cybersecurity analyst, data engineer",
	},
	"Business & Finance": {
		areas:  "corporate finance, business analysis, management consulting, risk assessment, or financial planning",
		skills: "financial modeling, business strategy, risk analysis, investment analysis, corporate governance",
		roles:  "business analyst, financial consultant, risk manager, investment analyst",
	},
	"Education": {
		areas:  "instructional design, educational technology, curriculum development, student assessment, or e-learning",
		skills: "curriculum design, educational assessment, learning management systems, instructional methods, student engagement",
		roles:  "instructional designer, educational technologist, curriculum developer, assessment specialist",
	},
	"Environmental Science & Sustainability": {
		areas:  "environmental impact assessment, sustainability planning, conservation, renewable energy, or waste management",
		skills: "environmental analysis, sustainability metrics, conservation planning, renewable energy assessment, waste reduction strategies",
		roles:  "environmental analyst, sustainability consultant, conservation specialist, renewable energy analyst",
	},
	"Media & Communications": {
		areas:  "journalism, public relations, broadcasting, social media management, or content production",
		skills: "media writing, public relations strategy, broadcasting techniques, social media analytics, content production",
		roles:  "media relations specialist, public relations coordinator, content producer, social media manager",
	},
	"Law & Government": {
		areas:  "legal research, policy analysis, compliance, public administration, or government relations",
		skills: "legal research, policy analysis, regulatory compliance, administrative procedures, stakeholder engagement",
		roles:  "legal researcher, policy analyst, compliance specialist, administrative coordinator",
	},
	"Arts & Design": {
		areas:  "graphic design, user interface design, product design, creative direction, or multimedia production",
		skills: "design principles, user experience, creative software tools, visual communication, product aesthetics",
		roles:  "graphic designer, UI/UX designer, product designer, creative director",
	},
}

var defaultIndustryContext = industryContext{
	areas:  "professional environment relevant to your field",
	skills: "professional skills appropriate for your industry",
	roles:  "relevant professional roles in your chosen field",
}

// baseSupervisorContext builds the shared persona for all supervisor
// prompts.
func baseSupervisorContext(industry, companyName string) string {
	companyDetail := "in a leading organization"
	if companyName != "" {
		companyDetail = "at " + companyName
	}

	companyEnv := "a professional organization"
	if companyName != "" {
		companyEnv = companyName
	}

	ctx, ok := industryContexts[industry]
	if !ok {
		ctx = defaultIndustryContext
	}

	return fmt.Sprintf(`You are an experienced professional mentor and internship supervisor in the %s industry %s.
You specialize in %s and have extensive expertise in mentoring interns and new professionals.

Your responsibilities include:
1. Creating realistic, challenging internship tasks that develop practical skills in %s
2. Providing guidance and feedback on intern submissions
3. Answering questions related to the industry, tasks, and professional development
4. Recommending appropriate learning resources
5. Evaluating intern performance and progress

Maintain a formal but friendly tone, encourage problem-solving, and give constructive advice.
Adapt your tasks and examples to fit the field of %s and the environment of %s.

You prepare interns for real-world roles such as %s. You have a professional, supportive communication style that balances encouragement with honest feedback.
You maintain high professional standards and expect quality work from your interns.
`, industry, companyDetail, ctx.areas, ctx.skills, industry, companyEnv, ctx.roles)
}

// difficultyForWeek maps a week number onto the prompt difficulty
// wording used when no explicit difficulty is requested.
func difficultyForWeek(week int) string {
	switch {
	case week <= 1:
		return "introductory"
	case week <= 3:
		return "intermediate"
	default:
		return "challenging"
	}
}

// tasksPerWeek is the number of task descriptors generated for a week.
func tasksPerWeek(week int) int {
	if week == 1 {
		return 3
	}
	return 2
}

func internshipPrompt(industry string, intern GenerationContext) Prompt {
	system := "You are an AI assistant that generates realistic virtual internship scenarios."

	user := fmt.Sprintf(`Create a realistic virtual internship for a student with the following details:
- Industry: %s
- Student major: %s
- Student interests: %s

Generate a JSON response with the following fields:
- title: The title of the internship (e.g., "Marketing Analytics Intern at TechCorp")
- description: A detailed description of the internship and what the student will learn
- duration_weeks: The duration of the internship in weeks (between 4 and 12)
`, industry, intern.Major, intern.CareerInterests)

	return Prompt{System: system, User: user}
}

func taskGenerationPrompt(industry, companyName string, intern GenerationContext, week int, difficulty string) Prompt {
	if difficulty == "" {
		difficulty = difficultyForWeek(week)
	}

	system := fmt.Sprintf(`%s

Your task now is to design realistic, professional internship tasks for Week %d that would be assigned in a real %s workplace.
The tasks should be %s level and build skills that are valuable in the industry.
`, baseSupervisorContext(industry, companyName), week, industry, difficulty)

	internContext := ""
	if intern.Major != "" || intern.CareerInterests != "" {
		internContext = fmt.Sprintf("The intern is studying %s and has expressed interest in %s.", intern.Major, intern.CareerInterests)
	}

	user := fmt.Sprintf(`Please create %d tasks for Week %d of the %s internship.
%s

For each task, provide:
1. A clear, professional title
2. A brief description explaining the purpose and importance of the task
3. Detailed instructions for completing the task
4. The difficulty level (easy, medium, or hard)
5. Estimated points value (between 50-200, with harder tasks worth more points)

Format your response as a valid JSON array of task objects with the fields: title, description, instructions, difficulty, and points.
`, tasksPerWeek(week), week, industry, internContext)

	return Prompt{System: system, User: user}
}

func feedbackPrompt(industry, taskTitle, taskDescription, submissionContent, taskDifficulty string) Prompt {
	system := fmt.Sprintf(`%s

Your task now is to evaluate an intern's submission for an assigned task. Provide constructive, specific feedback that would help the intern improve their professional skills.
Evaluate based on quality, thoroughness, critical thinking, industry relevance, and professional communication.
`, baseSupervisorContext(industry, ""))

	user := fmt.Sprintf(`Please evaluate the following submission for a %s level task:

TASK: %s
TASK DESCRIPTION: %s

SUBMISSION:
%s

Provide your evaluation as a valid JSON object with the following fields:
1. score: A numerical score between 0-100
2. feedback: Detailed professional feedback (200-300 words) including strengths, areas for improvement, and specific advice
3. next_steps: An array of 2-3 suggested actions or resources to improve skills in this area
`, taskDifficulty, taskTitle, taskDescription, submissionContent)

	return Prompt{System: system, User: user}
}

// ChatTaskContext carries the task fields shown to the supervisor in
// chat prompts.
type ChatTaskContext struct {
	Title       string
	Description string
	Difficulty  string
}

// ChatProgress carries internship progress shown to the supervisor in
// chat prompts.
type ChatProgress struct {
	Week           int
	CompletedTasks int
	AvgScore       float64
}

func chatPrompt(industry, question string, intern *GenerationContext, task *ChatTaskContext, progress *ChatProgress) Prompt {
	system := fmt.Sprintf(`%s

Your task now is to respond to an intern's question in a helpful, professional manner. Provide guidance that would be valuable in a real workplace setting.
Keep responses concise but thorough, professional, and actionable.
`, baseSupervisorContext(industry, ""))

	var details strings.Builder
	details.WriteString("Here is some context to inform your response:\n\n")

	if intern != nil {
		details.WriteString("INTERN PROFILE:\n")
		if intern.Major != "" {
			fmt.Fprintf(&details, "- Major: %s\n", intern.Major)
		}
		if intern.University != "" {
			fmt.Fprintf(&details, "- University: %s\n", intern.University)
		}
		if intern.CareerInterests != "" {
			fmt.Fprintf(&details, "- Career interests: %s\n", intern.CareerInterests)
		}
		details.WriteString("\n")
	}

	if task != nil {
		details.WriteString("CURRENT TASK:\n")
		if task.Title != "" {
			fmt.Fprintf(&details, "- Title: %s\n", task.Title)
		}
		if task.Description != "" {
			fmt.Fprintf(&details, "- Description: %s\n", task.Description)
		}
		if task.Difficulty != "" {
			fmt.Fprintf(&details, "- Difficulty: %s\n", task.Difficulty)
		}
		details.WriteString("\n")
	}

	if progress != nil {
		details.WriteString("INTERNSHIP PROGRESS:\n")
		if progress.Week > 0 {
			fmt.Fprintf(&details, "- Current week: %d\n", progress.Week)
		}
		if progress.CompletedTasks > 0 {
			fmt.Fprintf(&details, "- Completed tasks: %d\n", progress.CompletedTasks)
		}
		if progress.AvgScore > 0 {
			fmt.Fprintf(&details, "- Average score: %.0f/100\n", progress.AvgScore)
		}
		details.WriteString("\n")
	}

	user := fmt.Sprintf(`The intern has asked the following question:

QUESTION: %s

%s

Respond as a professional mentor would in a workplace setting. Be helpful but maintain professional standards and expectations.
`, question, details.String())

	return Prompt{System: system, User: user}
}

func resourcesPrompt(industry, taskTitle, taskDescription string) Prompt {
	system := fmt.Sprintf(`%s

Your task now is to recommend high-quality, specific learning resources that would help an intern complete their assigned task and develop relevant professional skills.
Focus on professional-grade resources that would be valuable in a real workplace setting.
`, baseSupervisorContext(industry, ""))

	user := fmt.Sprintf(`Please suggest 3-4 specific learning resources relevant to the following %s task:

TASK: %s
TASK DESCRIPTION: %s

For each resource, provide a valid JSON object with:
1. title: A specific, professional title
2. type: The format (article, video, course, tool, etc.)
3. description: A brief description of what the resource covers and why it's valuable (20-30 words)
4. url: A fictional but realistic URL where this resource might be found

Format your response as a valid JSON array of resource objects.
`, industry, taskTitle, taskDescription)

	return Prompt{System: system, User: user}
}

func certificatePrompt(industry, userName, internshipTitle string, tasksCompleted int, avgScore float64) Prompt {
	system := fmt.Sprintf(`%s

Your task now is to create a professional certificate of completion for an intern who has successfully completed their virtual internship program.
The certificate should reflect real-world professional standards and highlight the skills developed.
`, baseSupervisorContext(industry, ""))

	user := fmt.Sprintf(`Please create a certificate of completion for:

- Student Name: %s
- Internship: %s
- Industry: %s
- Tasks Completed: %d
- Average Score: %.2f/100

Format your response as a valid JSON object with:
1. title: A professional certificate title
2. description: A formal description of the achievement (100-150 words)
3. skills_acquired: A comma-separated list of 5-7 specific professional skills developed during the internship
`, userName, internshipTitle, industry, tasksCompleted, avgScore)

	return Prompt{System: system, User: user}
}
