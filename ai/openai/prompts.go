package openai

import "fmt"

const cvResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "email": {"type": "string"},
    "phone": {"type": "string"},
    "summary": {"type": "string"},
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "field": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"}
        }
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": "string"},
          "position": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "level": {"type": "string"}
        },
        "required": ["name"]
      }
    },
    "languages": {"type": "array", "items": {"type": "string"}},
    "publications": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": false
}`

const cvPromptTemplate = `Extract the candidate profile from the CV text given by the user and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Copy names, companies, institutions and dates as they appear in the text. Do not invent values.
- Omit any field that the text does not mention.
- List experience and education entries in the order they appear, most recent first when unclear.
- Use "Present" as the end date of an ongoing position.
- Each skill is a short noun phrase such as "Python" or "Project Management".
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Jane Roe, jane@roe.dev. Backend engineer at Acme since 2021, previously intern at Initech (2020). BSc Physics, University of Leeds 2016-2019. Skills: Go, Kubernetes."
Output:
{
  "name": "Jane Roe",
  "email": "jane@roe.dev",
  "experience": [
    {"company": "Acme", "position": "Backend Engineer", "startDate": "2021", "endDate": "Present"},
    {"company": "Initech", "position": "Intern", "startDate": "2020", "endDate": "2020"}
  ],
  "education": [
    {"institution": "University of Leeds", "degree": "BSc", "field": "Physics", "startDate": "2016", "endDate": "2019"}
  ],
  "skills": [{"name": "Go"}, {"name": "Kubernetes"}]
}`

func buildSystemPrompt() string {
	return fmt.Sprintf(cvPromptTemplate, cvResponseSchema)
}
