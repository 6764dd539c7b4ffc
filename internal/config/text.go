package config

var (
	DefaultWelcome = "Welcome"

	DefaultIntro = `I'm <span class='highlight'>Neo</span>, a practical software engineer who loves building things — from full-stack web applications to AI-driven tools. I'm passionate about creating efficient, intelligent, and high-quality products that deliver real value to users.`
)
