package repository_test

import (
	"context"
	"errors"
	"paygate/internal/db"
	"paygate/internal/repository"
	"paygate/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("VerificationRepository", func() {
	var (
		fakeStorage *fake.Storage
		repo        *repository.VerificationRepository
		ctx         context.Context

		fakeErr error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewVerificationRepository(fakeStorage)
		ctx = context.Background()

		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		When("the migration succeeds", func() {
			It("should migrate the verification record table", func() {
				err := repo.MigrateTables()

				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(1))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.VerificationRecord{}))
			})
		})

		When("the migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("should return the error", func() {
				err := repo.MigrateTables()
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetRecord", func() {
		When("the record exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					record, ok := entity.(*repository.VerificationRecord)
					Expect(ok).To(BeTrue())
					record.TxHash = value.(string)
					record.Chain = "evm"
					return nil
				}
			})

			It("should return the record", func() {
				record, err := repo.GetRecord(ctx, "0xabc")

				Expect(err).NotTo(HaveOccurred())
				Expect(record.TxHash).To(Equal("0xabc"))
				Expect(record.Chain).To(Equal("evm"))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("tx_hash"))
				Expect(value).To(Equal("0xabc"))
			})
		})

		When("the record does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return a not found error", func() {
				_, err := repo.GetRecord(ctx, "0xabc")
				Expect(err).To(MatchError(repository.ErrRecordNotFound))
			})
		})

		When("the storage read fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				_, err := repo.GetRecord(ctx, "0xabc")
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SaveRecord", func() {
		var record repository.VerificationRecord

		BeforeEach(func() {
			record = repository.VerificationRecord{
				TxHash:    "0xabc",
				Chain:     "evm",
				AmountRaw: "10000000000000",
				Sender:    "0xsender",
			}
		})

		When("the record is new", func() {
			BeforeEach(func() {
				fakeStorage.InsertIfAbsentReturns(true, nil)
			})

			It("should insert on the tx hash constraint", func() {
				err := repo.SaveRecord(ctx, record)

				Expect(err).NotTo(HaveOccurred())
				_, conflictColumn, _ := fakeStorage.InsertIfAbsentArgsForCall(0)
				Expect(conflictColumn).To(Equal("tx_hash"))
			})
		})

		When("the hash is already recorded", func() {
			BeforeEach(func() {
				fakeStorage.InsertIfAbsentReturns(false, nil)
			})

			It("should return a duplicate error", func() {
				err := repo.SaveRecord(ctx, record)
				Expect(err).To(MatchError(repository.ErrDuplicateRecord))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertIfAbsentReturns(false, fakeErr)
			})

			It("should return the error", func() {
				err := repo.SaveRecord(ctx, record)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
