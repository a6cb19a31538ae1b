package entity

// Stage はパイプライン実行の状態です。状態は常に前方にのみ遷移します。
type Stage int

const (
	StageIdle Stage = iota
	StageChartAnalysisPending
	StageChartAnalysisDone
	StageSentimentPending
	StageSentimentDone
	StageSynthesisPending
	StageComplete
)

var stageNames = [...]string{
	StageIdle:                 "idle",
	StageChartAnalysisPending: "chart_analysis_pending",
	StageChartAnalysisDone:    "chart_analysis_done",
	StageSentimentPending:     "sentiment_pending",
	StageSentimentDone:        "sentiment_done",
	StageSynthesisPending:     "synthesis_pending",
	StageComplete:             "complete",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Next は次の状態を返します。Complete の次は Complete のままです。
func (s Stage) Next() Stage {
	if s >= StageComplete {
		return StageComplete
	}
	return s + 1
}
