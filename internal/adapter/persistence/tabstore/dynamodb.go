package tabstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"importafacil/internal/usecase/interfaces"
)

const defaultTabsTableName = "importafacil_tabs"

// tabItem is the DynamoDB row for one sheet tab.
//
// Table requirements:
//   - PK: tab (string)
//
// Rows are kept as a JSON blob rather than nested lists: tabs are only ever
// read and written wholesale, so item-level addressing buys nothing.
type tabItem struct {
	Tab     string   `dynamodbav:"tab"`
	Headers []string `dynamodbav:"headers"`
	Rows    string   `dynamodbav:"rows"`
}

// DynamoDB persists tabs one item per tab.
type DynamoDB struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITabStore = (*DynamoDB)(nil)

func NewDynamoDB(ddb *dynamodb.Client) *DynamoDB {
	return &DynamoDB{
		ddb:       ddb,
		tableName: getenvDefault("TABS_TABLE", defaultTabsTableName),
	}
}

func (d *DynamoDB) ReadTab(ctx context.Context, tab string) ([]string, [][]string, error) {
	out, err := d.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"tab": &types.AttributeValueMemberS{Value: tab},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil, nil
	}

	var it tabItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, nil, err
	}
	var rows [][]string
	if it.Rows != "" {
		if err := json.Unmarshal([]byte(it.Rows), &rows); err != nil {
			return nil, nil, fmt.Errorf("tab %s: decode rows: %w", tab, err)
		}
	}
	return it.Headers, rows, nil
}

func (d *DynamoDB) WriteTab(ctx context.Context, tab string, headers []string, rows [][]string) error {
	encoded, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(tabItem{Tab: tab, Headers: headers, Rows: string(encoded)})
	if err != nil {
		return err
	}
	_, err = d.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      av,
	})
	return err
}
