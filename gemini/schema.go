package gemini

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/fwojciec/jobhunter"
	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

// JobAnalysisSchema is the response schema of the job extraction agent.
var JobAnalysisSchema = &genai.Schema{
	Type:        genai.TypeObject,
	Description: "A structured analysis of a job posting built from classified, atomic fields.",
	Required: []string{
		"jobTitle", "companyName", "location", "workModel", "jobType",
		"coreObjective", "keySkillsAndTools", "experienceRequirements",
		"qualifications", "companyCulture", "applicationLogistics",
	},
	Properties: map[string]*genai.Schema{
		"jobTitle":    {Type: genai.TypeString, Description: "The full job title exactly as listed."},
		"companyName": {Type: genai.TypeString, Description: "The hiring company."},
		"location": {
			Type:     genai.TypeObject,
			Required: []string{"rawText"},
			Properties: map[string]*genai.Schema{
				"city":    {Type: genai.TypeString},
				"state":   {Type: genai.TypeString, Description: "State, province or region."},
				"country": {Type: genai.TypeString},
				"rawText": {Type: genai.TypeString, Description: "The full location text as written in the posting."},
			},
		},
		"workModel": {
			Type:        genai.TypeString,
			Description: "Where the work happens. Use On-site when the posting does not say.",
			Enum:        []string{string(jobhunter.WorkModelOnSite), string(jobhunter.WorkModelHybrid), string(jobhunter.WorkModelRemote)},
		},
		"jobType": {
			Type: genai.TypeString,
			Enum: []string{
				string(jobhunter.JobTypeFullTime), string(jobhunter.JobTypePartTime), string(jobhunter.JobTypeContract),
				string(jobhunter.JobTypeInternship), string(jobhunter.JobTypeTemporary),
			},
		},
		"compensation": {
			Type:        genai.TypeObject,
			Description: "Base salary details. Omit entirely when the posting gives no salary.",
			Properties: map[string]*genai.Schema{
				"minSalary": {Type: genai.TypeNumber, Description: "Lower end of the base salary as a bare number."},
				"maxSalary": {Type: genai.TypeNumber, Description: "Upper end of the base salary as a bare number."},
				"currency":  {Type: genai.TypeString, Description: "Three-letter currency code such as AUD or USD."},
				"period": {
					Type: genai.TypeString,
					Enum: []string{string(jobhunter.PayPeriodYearly), string(jobhunter.PayPeriodHourly), string(jobhunter.PayPeriodMonthly)},
				},
				"notes": {Type: genai.TypeString, Description: "Original salary wording and extras such as bonus or equity."},
			},
		},
		"coreObjective": {Type: genai.TypeString, Description: "One sentence explaining why the role exists."},
		"keySkillsAndTools": {
			Type:     genai.TypeObject,
			Required: []string{"hardSkills", "softSkills", "toolsAndSoftware"},
			Properties: map[string]*genai.Schema{
				"hardSkills":       stringArray("Technical, measurable skills."),
				"softSkills":       stringArray("Interpersonal skills and traits."),
				"toolsAndSoftware": stringArray("Named software, platforms or methodologies."),
			},
		},
		"experienceRequirements": {
			Type:     genai.TypeObject,
			Required: []string{"rawText"},
			Properties: map[string]*genai.Schema{
				"minYears": {Type: genai.TypeNumber},
				"maxYears": {Type: genai.TypeNumber},
				"rawText":  {Type: genai.TypeString, Description: "The experience requirement as written."},
			},
		},
		"qualifications": {
			Type:        genai.TypeArray,
			Description: "Every qualification as its own classified item.",
			Items: &genai.Schema{
				Type:     genai.TypeObject,
				Required: []string{"detail", "type"},
				Properties: map[string]*genai.Schema{
					"detail": {Type: genai.TypeString},
					"type": {
						Type: genai.TypeString,
						Enum: []string{string(jobhunter.QualificationMustHave), string(jobhunter.QualificationPreferred)},
					},
				},
			},
		},
		"companyCulture": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"tone":          {Type: genai.TypeString, Description: "Overall tone, for example Corporate & Formal or Startup & Casual."},
				"keyAdjectives": stringArray("Adjectives the posting uses about the company, team or role."),
			},
		},
		"applicationLogistics": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"instructions": {Type: genai.TypeString},
				"closingDate":  {Type: genai.TypeString, Description: "Closing date as YYYY-MM-DD.", Format: "date"},
			},
		},
	},
	PropertyOrdering: []string{
		"jobTitle", "companyName", "location", "workModel", "jobType", "compensation",
		"coreObjective", "keySkillsAndTools", "experienceRequirements", "qualifications",
		"companyCulture", "applicationLogistics",
	},
}

// ContentSummarySchema is the response schema of the content summary agent.
var ContentSummarySchema = &genai.Schema{
	Type:     genai.TypeObject,
	Required: []string{"summary", "keyPoints", "wordCount"},
	Properties: map[string]*genai.Schema{
		"summary":   {Type: genai.TypeString, Description: "A concise summary of the content."},
		"keyPoints": stringArray("The most important points of the content."),
		"wordCount": {Type: genai.TypeInteger, Description: "Number of words in the summary."},
	},
}

var pingSchema = &genai.Schema{
	Type:       genai.TypeObject,
	Required:   []string{"message"},
	Properties: map[string]*genai.Schema{"message": {Type: genai.TypeString}},
}

func stringArray(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Description: description,
		Items:       &genai.Schema{Type: genai.TypeString},
	}
}

// JSONSchema converts a model response schema to a JSON Schema document.
// Optional properties also accept null since models sometimes emit null in
// place of omitting a field. Formats are dropped: they are hints to the
// model, not constraints on the stored record.
func JSONSchema(s *genai.Schema) map[string]any {
	return jsonSchema(s, false)
}

func jsonSchema(s *genai.Schema, nullable bool) map[string]any {
	out := make(map[string]any)
	if s.Description != "" {
		out["description"] = s.Description
	}

	typ := strings.ToLower(string(s.Type))
	if nullable {
		out["type"] = []any{typ, "null"}
	} else {
		out["type"] = typ
	}

	if len(s.Enum) > 0 {
		enum := make([]any, 0, len(s.Enum)+1)
		for _, v := range s.Enum {
			enum = append(enum, v)
		}
		if nullable {
			enum = append(enum, nil)
		}
		out["enum"] = enum
	}

	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = jsonSchema(p, !slices.Contains(s.Required, name))
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		required := make([]any, 0, len(s.Required))
		for _, r := range s.Required {
			required = append(required, r)
		}
		out["required"] = required
	}
	if s.Items != nil {
		out["items"] = jsonSchema(s.Items, false)
	}

	return out
}

// validator checks decoded model output against a compiled JSON Schema.
type validator struct {
	schema *gojsonschema.Schema
}

func mustCompileSchema(s *genai.Schema) *validator {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(JSONSchema(s)))
	if err != nil {
		panic(fmt.Sprintf("gemini: invalid response schema: %v", err))
	}
	return &validator{schema: schema}
}

// validate returns ESCHEMA listing every failing field.
func (v *validator) validate(doc any) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return jobhunter.Errorf(jobhunter.ESCHEMA, "AI response does not match schema: %v", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return jobhunter.Errorf(jobhunter.ESCHEMA, "AI response does not match schema: %s", strings.Join(problems, "; "))
}

// decode validates doc and converts it into the typed output.
func decode[O any](v *validator, doc any) (O, error) {
	var out O
	if err := v.validate(doc); err != nil {
		return out, err
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return out, jobhunter.Errorf(jobhunter.EINTERNAL, "failed to re-encode AI response: %v", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, jobhunter.Errorf(jobhunter.ESCHEMA, "AI response does not match schema: %v", err)
	}
	return out, nil
}
