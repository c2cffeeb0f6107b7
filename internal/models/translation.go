package models

type DictionaryPronunciation struct {
	SourceTextPhonetic   string `json:"source-text-phonetic"`
	SourceTextAudio      string `json:"source-text-audio"`
	DestinationTextAudio string `json:"destination-text-audio"`
}

type DictionaryDefinition struct {
	PartOfSpeech string `json:"part-of-speech"`
	Definition   string `json:"definition"`
	Example      string `json:"example"`
}

type TranslationResponse struct {
	SourceText      string                  `json:"source-text"`
	DestinationText string                  `json:"destination-text"`
	Pronunciation   DictionaryPronunciation `json:"pronunciation"`
	Definitions     []DictionaryDefinition  `json:"definitions"`
}

type MyMemoryResponse struct {
	ResponseBody struct {
		TranslatedText  string  `json:"translatedText"`
		Match           float64 `json:"match"`
		ResponseStatus  int     `json:"responseStatus"`
		ResponseDetails string  `json:"responseDetails"`
	} `json:"responseData"`

	Matches []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}

type TranslationResult struct {
	Text         string
	Match        float64
	Source       string
	Target       string
	Reliable     bool
	Alternatives []string
	Error        string
}
