package app

// Static portfolio content served to the linktree and demonlist pages. The
// UI is responsible for presentation; these are plain data.

// Link is one bookmark inside a folder. Coding and Anime mark entries the
// UI splits into their own sub-sections.
type Link struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Coding bool   `json:"coding,omitempty"`
	Anime  bool   `json:"anime,omitempty"`
}

// LinkFolder is one desktop-window folder of bookmarks.
type LinkFolder struct {
	Name        string `json:"name"`
	Links       []Link `json:"links"`
	AIDetectors []Link `json:"ai_detectors,omitempty"`
	Music       []Link `json:"music,omitempty"`
}

var LinkFolders = []LinkFolder{
	{
		Name: "AI",
		Links: []Link{
			{Title: "ChatGPT", URL: "https://chat.openai.com"},
			{Title: "Grok", URL: "https://grok.com"},
			{Title: "Gemini", URL: "https://gemini.google.com/app"},
			{Title: "DeepSeek", URL: "https://chat.deepseek.com/"},
			{Title: "Copilot", URL: "https://copilot.microsoft.com"},
			{Title: "Lovable", URL: "https://lovable.dev", Coding: true},
			{Title: "Claude", URL: "https://claude.ai", Coding: true},
			{Title: "Blackbox", URL: "https://www.blackbox.ai", Coding: true},
		},
		AIDetectors: []Link{
			{Title: "Reilaa", URL: "https://reilaa.com/"},
			{Title: "AI Humanize", URL: "https://aihumanize.io/"},
			{Title: "Grammarly AI Detector", URL: "https://www.grammarly.com/ai-detector"},
			{Title: "GPTZero", URL: "https://app.gptzero.me/"},
			{Title: "WalterWrites", URL: "https://walterwrites.ai/"},
		},
	},
	{
		Name: "Coding",
		Links: []Link{
			{Title: "GitHub", URL: "https://github.com"},
			{Title: "CodeSandbox", URL: "https://codesandbox.io"},
			{Title: "Sandbox Code", URL: "https://sandbox--code.vercel.app"},
			{Title: "Teachable Machine", URL: "https://teachablemachine.withgoogle.com/v1"},
		},
	},
	{
		Name: "Design",
		Links: []Link{
			{Title: "Ezgif", URL: "https://ezgif.com/"},
		},
	},
	{
		Name: "Education",
		Links: []Link{
			{Title: "MDN Web Docs", URL: "https://developer.mozilla.org"},
			{Title: "LitSolutions", URL: "https://www.litsolutions.org/"},
		},
	},
	{
		Name: "Media",
		Links: []Link{
			{Title: "HiAnime", URL: "https://hianime.to", Anime: true},
			{Title: "KickAssAnime", URL: "https://kaa.to", Anime: true},
			{Title: "AnimePahe", URL: "https://animepahe.ru", Anime: true},
			{Title: "TwistedWave", URL: "https://twistedwave.com/online"},
			{Title: "VocalRemover", URL: "https://vocalremover.org/"},
		},
		Music: []Link{
			{Title: "Pixabay Music", URL: "https://pixabay.com/music"},
		},
	},
	{
		Name: "Research",
		Links: []Link{
			{Title: "Arxiv", URL: "https://arxiv.org"},
		},
	},
	{
		Name: "Tools",
		Links: []Link{
			{Title: "TinyTool", URL: "https://tinytool.net/"},
		},
	},
}

// Demon is one entry of the ranked demonlist, with an optional embedded
// video URL for the side panel.
type Demon struct {
	Rank       int     `json:"rank"`
	Title      string  `json:"title"`
	Attempts   int     `json:"attempts"`
	Difficulty float64 `json:"difficulty"`
	Enjoyment  int     `json:"enjoyment"`
	Video      string  `json:"video,omitempty"`
}

var DemonList = []Demon{
	{Rank: 1, Title: "Bloodbath", Attempts: 154941, Difficulty: 8.6, Enjoyment: 5, Video: "https://www.youtube.com/embed/aHepqRsI3QE?start=1"},
	{Rank: 2, Title: "Nine Circles", Attempts: 2454, Difficulty: 3, Enjoyment: 6, Video: "https://www.youtube.com/embed/oMs2dBdYz_s"},
	{Rank: 3, Title: "Reanimation", Attempts: 1933, Difficulty: 2.8, Enjoyment: 7, Video: "https://www.youtube.com/embed/LYt78UV_wY4"},
	{Rank: 4, Title: "Invisible Clubstep", Attempts: 146, Difficulty: 2.2, Enjoyment: 2},
	{Rank: 5, Title: "Problematic", Attempts: 445, Difficulty: 2.1, Enjoyment: 0, Video: "https://www.youtube.com/embed/qsFg1W0bANo"},
	{Rank: 6, Title: "Clubstep", Attempts: 1842, Difficulty: 2.1, Enjoyment: 3, Video: "https://www.youtube.com/embed/RGhgz3ga_3Y"},
	{Rank: 7, Title: "Death Moon", Attempts: 346, Difficulty: 1.6, Enjoyment: 8, Video: "https://www.youtube.com/embed/J29z196QILs"},
	{Rank: 8, Title: "Xstep v2", Attempts: 682, Difficulty: 1.6, Enjoyment: 4},
	{Rank: 9, Title: "Shiver", Attempts: 198, Difficulty: 1.4, Enjoyment: 5},
	{Rank: 10, Title: "Deadlocked", Attempts: 654, Difficulty: 1.3, Enjoyment: 6, Video: "https://www.youtube.com/embed/TIvlU4Xz5zA"},
	{Rank: 11, Title: "Theory of Everything 2", Attempts: 823, Difficulty: 1.2, Enjoyment: 1},
	{Rank: 12, Title: "NothinG", Attempts: 24, Difficulty: 1.1, Enjoyment: 5},
	{Rank: 13, Title: "Crescendo", Attempts: 290, Difficulty: 1, Enjoyment: 5},
	{Rank: 14, Title: "Platinum Adventure", Attempts: 791, Difficulty: 1, Enjoyment: 4},
	{Rank: 15, Title: "Ultra Paracosm", Attempts: 54, Difficulty: 0.8, Enjoyment: 9},
}
