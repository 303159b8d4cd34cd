package domain

// Response messages shared by the usecases and the HTTP layer.
const (
	MsgCandidateCreated   = "Candidate created successfully"
	MsgCandidateNotExist  = "Given id does not exist"
	MsgMissingKeys        = "Required keys are missing in the request"
	MsgIncorrectDatatype  = "One or more fields have an incorrect data type"
	MsgInvalidPayload     = "Request payload does not match the expected schema"
	MsgInvalidFieldFormat = "One or more fields are not in the expected format"
	MsgStatusUpdated      = "Candidate status updated successfully"
	MsgStatusUpdateFailed = "Candidate status could not be updated"
	MsgInvalidFilter      = "Search parameters are invalid"
	MsgInvalidExport      = "Export request is invalid"
	MsgStorageFailure     = "Candidate could not be stored, please try again"
	MsgDefaultError       = "Something went wrong, please try again"
)
