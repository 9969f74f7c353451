package types

// HumanLoopConfig routes low-confidence results to human review.
type HumanLoopConfig struct {
	HumanLoopName     *string                  `json:"HumanLoopName,omitzero"`
	FlowDefinitionArn *string                  `json:"FlowDefinitionArn,omitzero"`
	DataAttributes    *HumanLoopDataAttributes `json:"DataAttributes,omitzero"`
}

type HumanLoopDataAttributes struct {
	ContentClassifiers []ContentClassifier `json:"ContentClassifiers,omitzero"`
}

// HumanLoopActivationOutput reports whether a human review was started. An
// absent HumanLoopArn means no review was triggered.
type HumanLoopActivationOutput struct {
	HumanLoopArn               *string  `json:"HumanLoopArn,omitzero"`
	HumanLoopActivationReasons []string `json:"HumanLoopActivationReasons,omitzero"`

	// JSON document with the evaluated activation conditions.
	HumanLoopActivationConditionsEvaluationResults *string `json:"HumanLoopActivationConditionsEvaluationResults,omitzero"`
}
