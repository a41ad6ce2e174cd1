package prompts

// Template names.
const (
	Consolidation = "consolidation"
	Section       = "section"
	Chat          = "chat"
)

const defaultSection = `Here are rows from the FHIR "{table}" resource for patient {patient_id}:
<rows>
{rows}
</rows>

Summarize the clinically relevant information in these rows in a short paragraph.
Use plain language and do not invent facts that are not present in the rows.`

const defaultConsolidation = `Here are summaries of individual FHIR sections for patient {patient_id}:
<sections>
{sections}
</sections>

Write a consolidated clinical summary of this patient based only on the section
summaries above. Cover demographics, conditions, medications, procedures and
observations where available, as a short narrative.`

const defaultChat = `Here is a medical record:
<record>
{context}
</record>

Review the medical record thoroughly.
Provide an answer to the question if available in the medical record.
Do not include or reference quoted content verbatim in the answer.
If the question cannot be answered by the document, say so.

Question: {question}?`
