package constant

const (
	// Generation defaults for the upstream chat model
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 512
	DefaultMaxRetries  = 3

	// RetrievalTopK is the fixed number of passages fed to the generator
	RetrievalTopK = 3

	// VerificationTextLimit bounds the extracted-document text embedded in
	// the verification prompt. The conversational analysis path always
	// receives the full text.
	VerificationTextLimit = 3000

	// NoReadableTextReply is the defined success response for uploads with
	// no extractable text. It is not an error and triggers no model calls.
	NoReadableTextReply = "No readable text found in document."
)

// VerificationPromptHeader is the fixed instruction template for the
// document verification call. The extracted text (bounded to
// VerificationTextLimit characters) is appended after it.
const VerificationPromptHeader = `You are a Customs Document Verification Assistant.
Carefully analyze the provided document text and determine:
1. Whether it is a valid customs-related document (Invoice, Bill of Lading, Customs Declaration, or Packing List).
2. Whether all essential trade details are present:
   - HS Code
   - Product Description
   - Country of Origin
   - Quantity & Value
   - Exporter/Importer Details
3. Whether the document appears authentic and complete, with no missing or inconsistent data.

Respond strictly in the following format:
Document Type: [Invoice / Bill of Lading / Customs Declaration / Packing List / Other / Unknown]
Document Status: [Correct / Incorrect]
Verification Result: [Verified: reason] or [Invalid: reason]
Missing or Suspicious Details (if any): [List clearly]

Document Text:
`
