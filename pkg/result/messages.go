package result

const (
	msgCurrentCalledBeforeMoveNext        = "current called before move next"
	msgCurrentCalledOnExhaustedEnumerator = "current called on exhausted enumerator"

	msgOkValueAbsent    = "ok value must not be nil"
	msgErrorValueAbsent = "error value must not be nil"
	msgResultAbsent     = "result must not be nil"
	msgUnknownVariant   = "unknown result variant %T"
	msgFuncAbsent       = "function must not be nil"
)
