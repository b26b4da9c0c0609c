/*
 * Copyright 2016 Simbiose Ventures.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package slicingdice provides a lightweight and easy-to-use client for the
SlicingDice analytics database service.

# Client

Use NewClient to create a client struct. The client is configured once with
API keys for the database it talks to and is safe for concurrent use:

	client, err := slicingdice.NewClient(&slicingdice.Config{
		MasterKey: "<your-master-key>",
	})
	if err != nil {
		return err
	}
	defer client.Close()

Keys of different permission levels can be combined. The client picks a key
with enough permission for each operation and fails locally, before any
request is made, when none of the configured keys may perform it:

	client, err := slicingdice.NewClient(&slicingdice.Config{
		WriteKey: "<your-write-key>",
		ReadKey:  "<your-read-key>",
	})

Configuration can also come from SD_* environment variables via
ConfigFromEnv.

# Insert Data

Insert takes the entity-to-columns mapping documented by the API and returns
the decoded response:

	result, err := client.Insert(ctx, map[string]any{
		"user1@slicingdice.com": map[string]any{
			"name": "John",
			"age":  42,
		},
		"auto-create": []string{"table", "column"},
	})

Use an InsertCable to batch many small inserts into few requests:

	cable := client.InsertCable()
	cable.Start(ctx)
	defer cable.Close()

	resCh := cable.Send("user1@slicingdice.com", map[string]any{"age": 42})
	if err := <-resCh; err != nil {
		return err
	}

# Query Data

Query payloads are opaque to the client. They are sent as-is and the decoded
response is returned unchanged, so new query features work without an SDK
upgrade:

	result, err := client.CountEntity(ctx, map[string]any{
		"query": []any{
			map[string]any{"state": map[string]any{"equals": "NY"}},
		},
	})

Result and score extraction responses can be turned into Arrow records for
columnar processing:

	result, err := client.ExtractResult(ctx, query)
	if err != nil {
		return err
	}
	record, err := result.ToArrowBatch()
	if err != nil {
		return err
	}
	defer record.Release()
*/
package slicingdice
