package assistant

const capabilitiesText = `🤖 Here's what I can do:
• Tasks: "add task buy groceries tomorrow", "complete task groceries", "what's due today?"
• Notes: "add note meeting ideas: follow up with sam", "summarize my notes"
• Health: "log 8 hours of sleep", "drank 2 liters of water", "how's my health?"
• Calendar: "what's on my calendar today?", "open 1"
• Money: "how much did I spend this month?", "how are my budgets?"
• Subscriptions: "add subscription netflix $15.99", "what subscriptions do I have?"
• Navigation: "open tasks", "go to settings"`

func (e *Engine) capabilitiesReply() *Reply {
	return &Reply{Kind: KindCapabilities, Text: capabilitiesText}
}
