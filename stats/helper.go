package stats

import (
	"context"

	"go.uber.org/zap"

	"github.com/pvlab/engcalc/common"
	"github.com/pvlab/engcalc/model"
	"github.com/pvlab/engcalc/utils"
)

// CleanSeries runs the full measurement cleaning pipeline: drop points
// more than one sigma from the mean, then drop points outside their
// leave-one-out confidence interval. The returned mask is aligned with
// the input sample; the interval describes the retained values.
func CleanSeries(ctx context.Context, data []float64, alpha float64) (res *model.CleanResult, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("CleanSeries recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Any("data", data))
			res, err = nil, common.ErrorInvalidValue
		}
	}()

	if len(data) < MinCleanPointCnt {
		logger.Error("point too little, skip clean", zap.Int("cnt", len(data)))
		return nil, common.ErrorInvalidType
	}

	sigmaMask, err := SigmaMask(data)
	if err != nil {
		logger.Error("SigmaMask failed", zap.Error(err))
		return nil, err
	}
	kept := applyMask(data, sigmaMask)

	confMask, err := ConfidenceMask(kept, alpha)
	if err != nil {
		logger.Error("ConfidenceMask failed", zap.Error(err))
		return nil, err
	}
	cleaned := applyMask(kept, confMask)

	mask := make([]bool, len(data))
	j := 0
	for i := range data {
		if sigmaMask[i] {
			mask[i] = confMask[j]
			j++
		}
	}

	interval, err := ConfidenceLevel(cleaned, ConfMethodStd, alpha)
	if err != nil {
		logger.Error("ConfidenceLevel failed", zap.Error(err), zap.Int("cnt", len(cleaned)))
		return nil, err
	}

	logger.Info("clean finished", zap.Int("inputCnt", len(data)), zap.Int("keptCnt", len(cleaned)),
		zap.Float64("mean", utils.FormatFloat(interval.Mean, 3)))

	return &model.CleanResult{
		Values:   cleaned,
		Mask:     mask,
		Interval: interval,
	}, nil
}
