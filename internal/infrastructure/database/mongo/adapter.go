package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/invoice-processor/internal/domain"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ database.Adapter = (*Adapter)(nil)

// Adapter implementa database.Adapter sobre MongoDB.
// Cada tabla es una colección; los documentos llevan _id int64 asignado desde
// una secuencia en la colección counters, para que las capas superiores vean
// los mismos IDs numéricos que con el backend SQL.
type Adapter struct {
	db *mongo.Database
}

// NewAdapter construye el adapter sobre la base indicada.
func NewAdapter(db *mongo.Database) *Adapter {
	return &Adapter{db: db}
}

// Connect abre el cliente, verifica conectividad y devuelve el adapter.
func Connect(ctx context.Context, uri, dbName string) (*Adapter, *mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return NewAdapter(client.Database(dbName)), client, nil
}

// Setup crea los índices únicos de deduplicación por nombre.
func (a *Adapter) Setup(ctx context.Context) error {
	for _, collection := range []string{"customers", "products"} {
		_, err := a.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("crear índice %s.name: %w", collection, err)
		}
	}
	return nil
}

// FindByID busca un documento por _id. Devuelve nil si no existe.
func (a *Adapter) FindByID(table string, id int64) (database.Record, error) {
	var doc bson.M
	err := a.db.Collection(table).FindOne(context.Background(), bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find %s: %w", table, err)
	}
	return decodeDocument(doc), nil
}

// FindAll pagina con skip/limit y orden por _id ascendente.
func (a *Adapter) FindAll(table string, page, perPage int) ([]database.Record, error) {
	if page < 1 {
		page = 1
	}
	skip := int64((page - 1) * perPage)
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(int64(perPage))
	cursor, err := a.db.Collection(table).Find(context.Background(), bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find all %s: %w", table, err)
	}
	defer cursor.Close(context.Background())

	var records []database.Record
	for cursor.Next(context.Background()) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		records = append(records, decodeDocument(doc))
	}
	return records, cursor.Err()
}

// Insert asigna el siguiente _id de la secuencia y persiste el documento.
func (a *Adapter) Insert(table string, data database.Record) (int64, error) {
	id, err := a.nextID(table)
	if err != nil {
		return 0, err
	}
	doc := encodeRecord(data)
	doc["_id"] = id
	if _, err := a.db.Collection(table).InsertOne(context.Background(), doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, fmt.Errorf("insert %s: %w", table, domain.ErrDuplicate)
		}
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}

// Update aplica $set sobre el documento; false si el _id no existe.
func (a *Adapter) Update(table string, id int64, data database.Record) (bool, error) {
	result, err := a.db.Collection(table).UpdateOne(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": encodeRecord(data)},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, fmt.Errorf("update %s: %w", table, domain.ErrDuplicate)
		}
		return false, fmt.Errorf("update %s: %w", table, err)
	}
	return result.ModifiedCount > 0, nil
}

// Delete elimina por _id; false si no había documento.
func (a *Adapter) Delete(table string, id int64) (bool, error) {
	result, err := a.db.Collection(table).DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", table, err)
	}
	return result.DeletedCount > 0, nil
}

// FindByField devuelve el primer documento (por _id) con field = value.
func (a *Adapter) FindByField(table, field string, value any) (database.Record, error) {
	if field == "id" {
		field = "_id"
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	var doc bson.M
	err := a.db.Collection(table).FindOne(context.Background(), bson.M{field: encodeValue(value)}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find %s by %s: %w", table, field, err)
	}
	return decodeDocument(doc), nil
}

// Execute no aplica en un backend de documentos: devuelve la base como handle
// opaco para operaciones avanzadas con el driver.
func (a *Adapter) Execute(query string, args ...any) (any, error) {
	return a.db, nil
}

// WithinTx ejecuta fn sobre el mismo adapter. Sin replica set MongoDB no
// ofrece transacciones multi-documento, así que la envoltura es una garantía
// reducida: no hay rollback real.
func (a *Adapter) WithinTx(ctx context.Context, fn func(tx database.Adapter) error) error {
	return fn(a)
}

// nextID incrementa y devuelve la secuencia de la tabla en counters.
func (a *Adapter) nextID(table string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := a.db.Collection("counters").FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": table},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("secuencia %s: %w", table, err)
	}
	return counter.Seq, nil
}

// encodeRecord traduce un Record al documento BSON: los decimales se guardan
// como Decimal128 para no perder precisión.
func encodeRecord(data database.Record) bson.M {
	doc := bson.M{}
	for key, value := range data {
		doc[key] = encodeValue(value)
	}
	return doc
}

func encodeValue(value any) any {
	if d, ok := value.(decimal.Decimal); ok {
		if d128, err := primitive.ParseDecimal128(d.String()); err == nil {
			return d128
		}
		return d.String()
	}
	return value
}

// decodeDocument normaliza el documento BSON a Record, exponiendo _id como id.
func decodeDocument(doc bson.M) database.Record {
	record := database.Record{}
	for key, value := range doc {
		if key == "_id" {
			record["id"] = database.AsInt64(value)
			continue
		}
		record[key] = value
	}
	return record
}
