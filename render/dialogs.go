package render

// Dialog texts
var (
	PauseLines = []string{"PAUSE"}

	HelpLines = []string{
		"h j k l / arrows   move",
		"m   build mine (next to a mountain)",
		"c   build cannon",
		"v   deploy base, then satellites",
		"u   upgrade      s   sell",
		"b   bomb         g   lantern",
		"space   throw or pick up trap",
		"p   pause        q   quit",
		"M   sound on/off",
	}

	GameOverLines = []string{"¡¡¡ GAME OVER !!!"}

	WonLines = []string{"¡¡¡ CONGRATULATIONS, YOU WON !!!", "This is very impresive"}
)
