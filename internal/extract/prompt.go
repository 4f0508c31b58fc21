// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"text/template"
)

// datePromptSystem instructs the model to find the article's publish date
// in first-page text and reply with a single JSON object.
const datePromptSystem = `You are a robot that only returns a single JSON object.

Extract the publish date of the article or the first date you find.
Format the publish date of the article in the following format: YYYY-MM-DD.

Here are some examples:
Text: JAN 27, 2025 12:05 PM
Response: {
    "end_date": "2025-01-27",
    "reasoning": "There was a date and time at the beginning of the document."
}

Text: Revised: September 1999
Response: {
    "end_date": "1999-09-01",
    "reasoning": "Document was revised in 'September 1999'."
}

Text: By Keith Bradsher
Keith Bradsher, who started covering international trade in steel in 1991,
reported from Hong Kong.
May. 10, 2022, 4:56 a.m. ET
Response: {
    "end_date": "2022-05-10",
    "reasoning": "Date found close to the author's name."
}

Text: 毎⽇新聞 2024/12/19 21:56
Response: {
    "end_date": "2024-12-19",
    "reasoning": "Date found close to the author's name."
}

Text: By Christian Leonard, Data Reporter
July 11, 2021
Response: {
    "end_date": "2021-07-11",
    "reasoning": "Date found close to the author's name."
}

Text: Today at 9:11 a.m. EST
Response: {
    "end_date": "",
    "reasoning": "'Today' is a relative date."
}

In the JSON object value you return, the "end_date" field should contain
either the formatted end date or the empty string. In the JSON object
value you return, the "reasoning" field should contain a string describing
why you returned this value for "end_date".`

// sourcePromptSystem instructs the model to infer the article title and
// publisher name from the filename alone.
const sourcePromptSystem = `You are a robot that only returns a single JSON object.

Extract the title of the article and the name of the article's publisher by
looking at the filename. The publisher name is often suffixed to the filename
with hyphens or underscores.

Here are some examples:

Filename: China Is at Heart of Trump Tariffs on Steel and Aluminum - The New York Times.pdf
Response: {
    "publisher": "The New York Times",
    "title": "China Is at Heart of Trump Tariffs on Steel and Aluminum",
    "reasoning": "The publisher's name is separated from the title by ' - '."
}

Filename: What is the CFPB, the consumer watchdog targeted by Trump_ - The Washington Post.pdf
Response: {
    "publisher": "The Washington Post",
    "title": "What is the CFPB, the consumer watchdog targeted by Trump",
    "reasoning": "The publisher's name is separated from the title by '_ - '."
}

In the JSON object value you return:
- The "publisher" field should contain either the publisher's name or the
  empty string.
- The "title" field should contain the substring that excludes the publisher name.
- The "reasoning" field should contain a string describing why you returned
  these values.`

// sourcePromptTmpl renders the user content for the publisher/title prompt.
var sourcePromptTmpl = template.Must(template.New("source").Parse(`Filename: {{.Filename}}
`))

// renderSourcePrompt executes the publisher/title user template.
func renderSourcePrompt(filename string) (string, error) {
	var buf bytes.Buffer
	if err := sourcePromptTmpl.Execute(&buf, struct{ Filename string }{Filename: filename}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
