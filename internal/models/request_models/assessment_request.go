package request_models

type StartAssessmentRequest struct {
	Age        int    `json:"age" binding:"required,min=10,max=100"`
	Gender     string `json:"gender" binding:"required,oneof=male female other prefer_not_say"`
	Profession string `json:"profession" binding:"required,max=100"`
}

type SubmitResponsesRequest struct {
	Answers []string `json:"answers" binding:"required"`
}
