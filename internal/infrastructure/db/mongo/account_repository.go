package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

const (
	collectionAccounts     = "accounts"
	collectionBankAccounts = "center_bank_accounts"
)

// AccountRepository persists ledger accounts.
type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionAccounts)}
}

type mongoAccount struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Balance float64            `bson:"balance"`
}

func (m *mongoAccount) toDomain() *domain.Account {
	return &domain.Account{ID: m.ID.Hex(), Name: m.Name, Balance: m.Balance}
}

func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cur.Close(ctx)

	var accounts []*domain.Account
	for cur.Next(ctx) {
		var m mongoAccount
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, m.toDomain())
	}
	return accounts, cur.Err()
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, mongoAccount{Name: a.Name, Balance: a.Balance})
	if err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *a
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AccountRepository) Update(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"name": a.Name, "balance": a.Balance}})
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return a, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// BankAccountRepository persists center payout bank accounts. Unlike the
// other records these are keyed by their numeric code, not an ObjectID.
type BankAccountRepository struct {
	col *mongo.Collection
}

func NewBankAccountRepository(db *mongo.Database) *BankAccountRepository {
	return &BankAccountRepository{col: db.Collection(collectionBankAccounts)}
}

type mongoBankAccount struct {
	Code          int     `bson:"code"`
	SubCode       string  `bson:"sub_code,omitempty"`
	BankAccNumber string  `bson:"bank_acc_number"`
	Name          string  `bson:"name"`
	IFSC          string  `bson:"ifsc"`
	Branch        string  `bson:"branch,omitempty"`
	Amount        float64 `bson:"amount"`
}

func (m *mongoBankAccount) toDomain() *domain.CenterBankAccount {
	return &domain.CenterBankAccount{
		Code:          m.Code,
		SubCode:       m.SubCode,
		BankAccNumber: m.BankAccNumber,
		Name:          m.Name,
		IFSC:          m.IFSC,
		Branch:        m.Branch,
		Amount:        m.Amount,
	}
}

func (r *BankAccountRepository) List(ctx context.Context) ([]*domain.CenterBankAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer cur.Close(ctx)

	var accounts []*domain.CenterBankAccount
	for cur.Next(ctx) {
		var m mongoBankAccount
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode bank account: %w", err)
		}
		accounts = append(accounts, m.toDomain())
	}
	return accounts, cur.Err()
}

func (r *BankAccountRepository) Create(ctx context.Context, a *domain.CenterBankAccount) (*domain.CenterBankAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBankAccount{
		Code:          a.Code,
		SubCode:       a.SubCode,
		BankAccNumber: a.BankAccNumber,
		Name:          a.Name,
		IFSC:          a.IFSC,
		Branch:        a.Branch,
		Amount:        a.Amount,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert bank account: %w", err)
	}
	return a, nil
}

func (r *BankAccountRepository) Update(ctx context.Context, a *domain.CenterBankAccount) (*domain.CenterBankAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"sub_code":        a.SubCode,
		"bank_acc_number": a.BankAccNumber,
		"name":            a.Name,
		"ifsc":            a.IFSC,
		"branch":          a.Branch,
		"amount":          a.Amount,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"code": a.Code}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update bank account: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return a, nil
}

func (r *BankAccountRepository) Delete(ctx context.Context, code int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"code": code})
	if err != nil {
		return fmt.Errorf("delete bank account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
