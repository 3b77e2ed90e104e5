package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Earning=MockEarningService

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"ecoparking/config"
	"ecoparking/infras/otel"
	"ecoparking/infras/s3"
	"ecoparking/internal/domains/earning/model"
	"ecoparking/internal/domains/earning/model/dto"
	"ecoparking/internal/domains/earning/repository"
	"ecoparking/internal/domains/report"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/timezone"
	"ecoparking/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	defaultRetentionYears = 2
	reportFilePrefix      = "reporte_ganancias_"
	reportFileExt         = ".csv"
	reportDirPerm         = 0o755
	reportFilePerm        = 0o644
)

type Earning interface {
	Record(ctx context.Context, req dto.RecordRequest) error
	Summary(ctx context.Context) (report.EarningsSummary, error)
	Range(ctx context.Context, r gDto.DateRange) (dto.RangeResponse, error)
	ExportCSV(ctx context.Context, r *gDto.DateRange) (dto.ExportResponse, error)
	Prune(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo    repository.Earning
	storage s3.S3
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Earning, storage s3.S3, cfg *config.Config, otel otel.Otel) Earning {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		otel:    otel,
	}
}

// Record appends one payment to the ledger, stamped now.
func (s *serviceImpl) Record(ctx context.Context, req dto.RecordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordEarning")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(shared.Actor(ctx), timezone.Now())); err != nil {
		log.Error().Err(err).Str("concept", req.Concept).Msg("failed to record earning")

		return fmt.Errorf("failed to record earning: %w", err)
	}

	return nil
}

func (s *serviceImpl) Summary(ctx context.Context) (res report.EarningsSummary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EarningsSummary")
	defer scope.EndWithError(&err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{},
		model.FieldAmount, model.FieldPaidAt, model.FieldPaymentMethod, model.FieldLocation, model.FieldVehicleType,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get earnings")

		return res, fmt.Errorf("failed to get earnings: %w", err)
	}

	return report.SummarizeEarnings(dto.ToPayments(models), timezone.Now()), nil
}

// Range lists the payments inside the window, latest first, with their total.
func (s *serviceImpl) Range(ctx context.Context, r gDto.DateRange) (res dto.RangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EarningsRange")
	defer scope.EndWithError(&err)

	models, err := s.inRange(ctx, &r)
	if err != nil {
		return res, err
	}

	res.FromModels(r, models)

	return res, nil
}

func (s *serviceImpl) inRange(ctx context.Context, r *gDto.DateRange) ([]model.Earning, error) {
	filter := gDto.FilterGroup{}

	if r != nil {
		if err := validator.ValidateStruct(r); err != nil {
			return nil, err
		}

		filter = gDto.And(
			gDto.NewFilter(model.FieldPaidAt, gDto.FilterOperatorGreaterEq, r.From, "paid_from"),
			gDto.NewFilter(model.FieldPaidAt, gDto.FilterOperatorLessEq, r.To, "paid_to"),
		)
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldPaidAt, SortDir: gDto.SortDirDesc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get earnings")

		return nil, fmt.Errorf("failed to get earnings: %w", err)
	}

	return models, nil
}

// ExportCSV writes the ledger, or the part inside r, to the report directory and uploads a copy
// when object storage is enabled. A failed upload keeps the local file.
func (s *serviceImpl) ExportCSV(ctx context.Context, r *gDto.DateRange) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportEarnings")
	defer scope.EndWithError(&err)

	models, err := s.inRange(ctx, r)
	if err != nil {
		return res, err
	}

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err = w.Write(dto.CSVHeader); err != nil {
		return res, fmt.Errorf("failed to write report header: %w", err)
	}

	for _, m := range models {
		if err = w.Write(dto.CSVRecord(m)); err != nil {
			return res, fmt.Errorf("failed to write report row: %w", err)
		}
	}

	w.Flush()

	if err = w.Error(); err != nil {
		return res, fmt.Errorf("failed to write report: %w", err)
	}

	res.FileName = reportFilePrefix + timezone.Now().Format(constant.FileStampFormat) + reportFileExt
	res.Rows = len(models)

	dir := s.cfg.App.ReportDir
	if dir == constant.Empty {
		dir = "."
	}

	if err = os.MkdirAll(dir, reportDirPerm); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("failed to create report directory")

		return res, fmt.Errorf("failed to create report directory: %w", err)
	}

	res.Path = filepath.Join(dir, res.FileName)

	if err = os.WriteFile(res.Path, buf.Bytes(), reportFilePerm); err != nil {
		log.Error().Err(err).Str("path", res.Path).Msg("failed to write report file")

		return res, fmt.Errorf("failed to write report file: %w", err)
	}

	log.Info().Str("path", res.Path).Int("rows", res.Rows).Msg("Earnings report exported")

	if s.cfg.External.S3.Enable && s.storage != nil {
		url, uploadErr := s.storage.UploadFileBytes(ctx, s.cfg.External.S3.ReportDirectory, res.FileName, constant.ContentTypeCSV, buf.Bytes())
		if uploadErr != nil {
			log.Warn().Err(uploadErr).Str("file", res.FileName).Msg("failed to upload earnings report")
		} else {
			res.URL = url
		}
	}

	return res, nil
}

// Prune drops ledger entries older than the retention period.
func (s *serviceImpl) Prune(ctx context.Context) (res int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PruneEarnings")
	defer scope.EndWithError(&err)

	years := s.cfg.Retention.EarningsYears
	if years <= 0 {
		years = defaultRetentionYears
	}

	cutoff := timezone.Now().AddDate(-years, 0, 0)

	res, err = s.repo.Delete(ctx, gDto.And(gDto.NewFilter(model.FieldPaidAt, gDto.FilterOperatorLess, cutoff)))
	if err != nil {
		log.Error().Err(err).Msg("failed to prune earnings")

		return res, fmt.Errorf("failed to prune earnings: %w", err)
	}

	log.Info().Int64("deleted", res).Time("cutoff", cutoff).Msg("Pruned earnings")

	return res, nil
}
