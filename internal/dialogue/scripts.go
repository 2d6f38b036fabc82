package dialogue

// IntroScript introduces the player's group on the first unpaused tick.
const IntroScript = "intro_to_ingroup"

// DefaultScripts returns the built-in dialogue pages keyed by script name.
func DefaultScripts() map[string][]string {
	return map[string][]string{
		IntroScript: {
			"Welcome to the valley. The folks here call themselves the ingroup.",
			"Work the soil, sell your harvest, and keep an eye on the sky.",
		},
		"sign": {
			"Notice board: the round ends when the bell rings. Plan your harvest.",
		},
		"outgroup": {
			"Across the river lives the outgroup. They farm differently.",
			"Press O to visit their camp when you are ready.",
		},
	}
}
