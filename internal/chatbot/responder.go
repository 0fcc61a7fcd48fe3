package chatbot

import (
	"math/rand"
	"strings"
)

// rule maps a set of trigger phrases to one canned response. Rules are
// checked in order; the first rule with any phrase present in the
// lower-cased input wins.
type rule struct {
	triggers []string
	response string
}

// Respond computes the bot's reply to a user message. It is a pure
// string-matching lookup over the rule table, with a random generic
// fallback when nothing matches.
func Respond(input string) string {
	message := strings.ToLower(input)

	for _, r := range rules {
		for _, t := range r.triggers {
			if strings.Contains(message, t) {
				return r.response
			}
		}
	}

	return fallbacks[rand.Intn(len(fallbacks))]
}

// Greeting opens every conversation.
const Greeting = "Hi! I'm your SkillPassport assistant. I can help you with:\n\n" +
	"- Career guidance and skill recommendations\n" +
	"- Credential suggestions\n" +
	"- App features and how to use them\n\n" +
	"What would you like to know?"

var rules = []rule{
	{
		triggers: []string{"how to use", "getting started", "tutorial"},
		response: "How to Use SkillPassport:\n\n" +
			"Adding Credentials:\n" +
			"1. Click 'Add Credential' (top-right corner)\n" +
			"2. Choose a credential type\n" +
			"3. Fill in the basics (name, issuer, date)\n" +
			"4. Provide the URL of your certificate for verification\n" +
			"5. Optionally upload a PDF for extra proof\n\n" +
			"Navigation:\n" +
			"- Home: your dashboard and stats\n" +
			"- Profile: personal info and avatar\n" +
			"- Connections: network with other professionals\n" +
			"- Settings: themes and security\n\n" +
			"Tip: credentials with evidence show as 'Verified' with green badges!",
	},
	{
		triggers: []string{"add credential", "upload certificate", "how to add", "how do i add"},
		response: "Adding Credentials Step-by-Step:\n\n" +
			"1. Click 'Add Credential' (top-right)\n" +
			"2. Select a credential type\n" +
			"3. Enter the certificate name and issuer\n" +
			"4. Add the issue date\n" +
			"5. Paste the certificate URL for verification\n" +
			"6. Optionally upload the PDF (max 10MB)\n" +
			"7. Submit!\n\n" +
			"Verification:\n" +
			"- Evidence attached = green 'Verified' badge\n" +
			"- No evidence = yellow 'Non Verified' badge\n\n" +
			"Best URLs to use: Coursera certificate links, LinkedIn Learning " +
			"certificates, official issuer websites, cloud provider certification pages.",
	},
	{
		triggers: []string{"verify", "verification", "green badge"},
		response: "Certificate Verification:\n\n" +
			"- Add a certificate URL or PDF when creating a credential\n" +
			"- Credentials with evidence show a green 'Verified' badge\n" +
			"- Credentials without evidence show a yellow 'Non Verified' badge\n\n" +
			"Tips:\n" +
			"- Use direct certificate links, not profile pages\n" +
			"- Make sure URLs are publicly accessible\n" +
			"- Copy the exact URL from your certificate email\n\n" +
			"Why it matters: verified credentials build trust with connections " +
			"and show authenticity to employers.",
	},
	{
		triggers: []string{"career guidance", "career advice", "career path"},
		response: "Career Guidance Strategy:\n\n" +
			"1. Choose your field: identify the target career and research its required skills\n" +
			"2. Build relevant credentials: focus on quality over quantity, from reputable sources\n" +
			"3. Create a strong profile: professional photo, LinkedIn and GitHub links, " +
			"and connections in your field\n\n" +
			"Field-specific advice:\n" +
			"- Developer: programming, frameworks, cloud\n" +
			"- Data Science: statistics, Python, ML, visualization\n" +
			"- Design: UI/UX, design tools, portfolio projects\n" +
			"- Cloud: AWS/Azure/GCP certifications",
	},
	{
		triggers: []string{"dream job", "high salary", "better job"},
		response: "Landing Your Dream Job:\n\n" +
			"- Upload certificates from all relevant areas of your target field\n" +
			"- Show breadth and depth, including soft-skill certifications\n" +
			"- Verified credentials build instant credibility\n\n" +
			"Action plan:\n" +
			"1. Upload your existing certificates\n" +
			"2. Identify skill gaps in your target role\n" +
			"3. Get the missing certifications\n" +
			"4. Build connections in your industry\n" +
			"5. Keep your profile updated",
	},
	{
		triggers: []string{"developer", "web development", "frontend", "backend", "programming"},
		response: "Developer Career Path:\n\n" +
			"Essential certificates to upload:\n" +
			"- Frontend: JavaScript, TypeScript, frameworks, HTML/CSS\n" +
			"- Backend: APIs, databases, a server language\n" +
			"- Cloud: AWS, Google Cloud or Azure fundamentals\n" +
			"- Tools: Git, Docker, testing frameworks\n\n" +
			"Employers love continuous learning; upload certificates regularly to show growth!",
	},
	{
		triggers: []string{"data science", "machine learning", "analytics"},
		response: "Data Science Career Path:\n\n" +
			"Must-have certificates to upload:\n" +
			"- Foundations: Python, R, statistics\n" +
			"- Machine learning: scikit-learn, TensorFlow, PyTorch\n" +
			"- Analytics: Tableau, Power BI\n" +
			"- Cloud ML: AWS ML, Google Cloud ML, Azure ML\n\n" +
			"Start with Python and statistics, then show progression from basics to " +
			"advanced topics. Certificates from different domains show versatility.",
	},
	{
		triggers: []string{"design", "ui", "ux", "graphic"},
		response: "Design Career Path:\n\n" +
			"Essential certificates to upload:\n" +
			"- UI/UX: Google UX Design, Figma\n" +
			"- Graphic design: Adobe Creative Suite\n" +
			"- Web design: HTML/CSS, responsive design\n" +
			"- Theory: design thinking, color, typography\n\n" +
			"Design is about solving problems; upload certificates that show both " +
			"creative and analytical thinking.",
	},
	{
		triggers: []string{"dashboard", "home page", "stats"},
		response: "Dashboard Overview:\n\n" +
			"Your stats cards:\n" +
			"- Credentials: total certificates uploaded\n" +
			"- Verified Skills: credentials with evidence\n" +
			"- Connections: your professional network size\n\n" +
			"Quick actions: click 'Add Credential' to upload new certificates; each " +
			"credential shows its verification status (green = verified, yellow = needs evidence).",
	},
	{
		triggers: []string{"theme", "color", "appearance", "customize"},
		response: "Customization & Themes:\n\n" +
			"Available themes: Ocean Blue, Rose Garden, Forest Night, Sunset Fire, " +
			"Purple Dream, Cyber Teal.\n\n" +
			"How to change:\n" +
			"1. Go to the Settings page\n" +
			"2. Find the Appearance section\n" +
			"3. Pick your theme; changes apply instantly and are saved automatically\n\n" +
			"Choose a theme that fits your professional brand.",
	},
	{
		triggers: []string{"connection", "connect", "network"},
		response: "Professional Networking Guide:\n\n" +
			"1. Go to the Connections page\n" +
			"2. Discover People: browse available professionals\n" +
			"3. Click 'Connect' to send requests\n" +
			"4. My Connections: view accepted connections\n" +
			"5. Requests: manage incoming connection requests\n\n" +
			"Benefits: view each other's verified credentials, build credibility, " +
			"and expand your industry network. Quality over quantity!",
	},
	{
		triggers: []string{"profile", "avatar", "photo", "personal info"},
		response: "Profile Management Guide:\n\n" +
			"1. Photo: upload a professional headshot (max 2MB)\n" +
			"2. Basic info: full name and email\n" +
			"3. Social links: LinkedIn and GitHub URLs\n" +
			"4. Theme: choose from the six available themes\n\n" +
			"A complete profile gets higher connection acceptance rates and more views.",
	},
	{
		triggers: []string{"problem", "error", "not working", "bug"},
		response: "Troubleshooting Guide:\n\n" +
			"Credential upload problems: make sure the PDF is under 10MB and the " +
			"evidence URL is valid.\n" +
			"Profile issues: images must be under 2MB in a supported format (JPG, PNG).\n" +
			"Connection problems: refresh the connections page, or log out and back in.\n\n" +
			"Most issues resolve with a fresh session.",
	},
	{
		triggers: []string{"security", "password", "account safety"},
		response: "Security & Account Safety:\n\n" +
			"Password management:\n" +
			"1. Go to the Settings page\n" +
			"2. Click 'Change Password'\n" +
			"3. Enter and confirm the new password\n\n" +
			"Best practices: use strong unique passwords, don't share credentials, " +
			"and log out from shared devices. Your credentials are private by default; " +
			"only connected users can view your certificates.",
	},
}

var fallbacks = []string{
	"I'm here to help you succeed with SkillPassport! I can assist with:\n\n" +
		"- App usage: adding credentials, navigating features\n" +
		"- Career guidance: field-specific certificate strategies\n" +
		"- Verification: how to get green verified badges\n" +
		"- Networking: building professional connections\n\n" +
		"What would you like to know more about?",
	"Welcome to SkillPassport! I can help you with:\n\n" +
		"- Getting started: step-by-step app tutorials\n" +
		"- Career planning: which certificates to upload for your field\n" +
		"- Verification tips: how to get those green verified badges\n" +
		"- Networking: building meaningful professional connections\n\n" +
		"What specific area interests you most?",
	"I'm your SkillPassport assistant! Here's what I can help with:\n\n" +
		"- App features: navigation, credential upload, profile setup\n" +
		"- Career strategy: field-specific certification advice\n" +
		"- Verification: getting verified badges for credibility\n" +
		"- Networking: growing your professional network\n\n" +
		"Just ask me anything about using SkillPassport effectively!",
}

// Fallbacks exposes the generic responses so callers can tell a fallback
// from a matched rule.
func Fallbacks() []string {
	out := make([]string, len(fallbacks))
	copy(out, fallbacks)
	return out
}
