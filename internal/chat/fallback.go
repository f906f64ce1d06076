package chat

import "strings"

// OrganizationContext is the fixed preamble sent ahead of every user message
// when the generative model is configured.
const OrganizationContext = `You are an AI assistant for Al Nahd Charty Foundation (Charty Events), a charitable organization in Tanzania.
Organization details:
- Name: Al Nahd Charty Foundation
- Location: Dar es Salaam, Tanzania
- Contact: kilindosaid771@gmail.com, Phone: 0683859574
- WhatsApp: +255683859574
- Mission: Empowering communities and transforming lives through compassionate service
- Focus areas: Education support, school equipment, community development

You should provide helpful, accurate information about the organization, its services, and how people can get involved or donate.
Be friendly, professional, and informative. If users ask about topics outside your knowledge, direct them to contact the organization directly.`

type fallbackRule struct {
	keywords []string
	reply    string
}

// Ordered: first match wins, mirroring the support widget's behavior.
var fallbackRules = []fallbackRule{
	{
		keywords: []string{"hello", "hi", "help"},
		reply:    "Hello! I'm the AI assistant for Al Nahd Charty Foundation. I can help you learn about our organization, services, and how to get involved. What would you like to know?",
	},
	{
		keywords: []string{"about", "organization", "foundation"},
		reply:    "Al Nahd Charty Foundation is a charitable organization based in Dar es Salaam, Tanzania. We focus on empowering communities through education support, school equipment distribution, and community development initiatives.",
	},
	{
		keywords: []string{"services", "programs", "work"},
		reply:    "We provide school equipment support, educational materials, and work to empower local communities. Our main focus is on education and helping children access quality learning resources.",
	},
	{
		keywords: []string{"donate", "support", "contribute"},
		reply:    "Thank you for your interest in supporting our cause! You can donate through our website or contact us at kilindosaid771@gmail.com for more information about donation options.",
	},
	{
		keywords: []string{"contact", "email", "phone"},
		reply:    "You can reach us at kilindosaid771@gmail.com or call 0683859574. For quick inquiries, you can also WhatsApp us at +255683859574.",
	},
	{
		keywords: []string{"location", "where", "address"},
		reply:    "We are located in Dar es Salaam, Tanzania. For specific address details, please contact us directly.",
	},
	{
		keywords: []string{"volunteer", "volunteering"},
		reply:    "We welcome volunteers! Please contact us at kilindosaid771@gmail.com to learn about current volunteer opportunities.",
	},
}

const defaultReply = "Thank you for your question about Al Nahd Charty Foundation. For more detailed information, please contact us at kilindosaid771@gmail.com or call 0683859574."

// Fallback returns a canned reply for a user message when the generative
// model is unavailable or errors.
func Fallback(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.reply
			}
		}
	}
	return defaultReply
}
