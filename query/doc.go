// Package query answers natural-language questions about CV records.
//
// A question is classified against a fixed, ordered set of question forms
// ("who knows X?", "who worked at X?", ...). The matching form decides which
// record fields are searched and which response template is used. Questions
// matching no form search every field for the whole question text.
//
//	engine, _ := query.NewEngine(searcher)
//	answer, err := engine.Ask(ctx, "Who has experience with qualitative research?")
//	fmt.Println(answer.Response)
//
// Results are ranked with search.QuestionWeights, which favours experience
// and education over the candidate name.
package query
