// Package metrics publishes operational counters to CloudWatch.
// file: metrics/metrics.go
package metrics

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"

	"xtrnia/config"
	"xtrnia/logger"
)

// Publisher records upload and login events. Implementations never fail
// the caller: publishing errors are logged and dropped.
type Publisher interface {
	UploadAccepted(kind string, bytes int64)
	UploadRejected(kind, reason string)
	LoginFailed()
}

// New returns a CloudWatch publisher when metrics are enabled, Noop otherwise.
func New(cfg config.Metrics, region string) (Publisher, error) {
	if !cfg.Enabled {
		return Noop{}, nil
	}
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, err
	}
	return NewCloudWatch(cloudwatch.New(sess), cfg.Namespace), nil
}

// ------------------- no-op -------------------

// Noop discards every metric.
type Noop struct{}

func (Noop) UploadAccepted(string, int64)  {}
func (Noop) UploadRejected(string, string) {}
func (Noop) LoginFailed()                  {}

// ------------------- cloudwatch -------------------

// CloudWatch pushes each event as a single datum.
type CloudWatch struct {
	client    cloudwatchiface.CloudWatchAPI
	namespace string
}

// NewCloudWatch reuses client for every metric call.
func NewCloudWatch(client cloudwatchiface.CloudWatchAPI, namespace string) *CloudWatch {
	return &CloudWatch{client: client, namespace: namespace}
}

// UploadAccepted pushes the upload count and stored bytes for kind.
func (c *CloudWatch) UploadAccepted(kind string, bytes int64) {
	dims := []*cloudwatch.Dimension{dimension("Kind", kind)}
	c.put(
		datum("UploadCount", 1, cloudwatch.StandardUnitCount, dims),
		datum("UploadBytes", float64(bytes), cloudwatch.StandardUnitBytes, dims),
	)
}

// UploadRejected counts uploads refused by the gate, by reason.
func (c *CloudWatch) UploadRejected(kind, reason string) {
	c.put(datum("UploadRejected", 1, cloudwatch.StandardUnitCount,
		[]*cloudwatch.Dimension{dimension("Kind", kind), dimension("Reason", reason)}))
}

// LoginFailed counts rejected admin logins.
func (c *CloudWatch) LoginFailed() {
	c.put(datum("LoginFailures", 1, cloudwatch.StandardUnitCount, nil))
}

// -----------------------------------------------------------
// internal helpers to package up CloudWatch calls
// -----------------------------------------------------------

func dimension(name, value string) *cloudwatch.Dimension {
	return &cloudwatch.Dimension{Name: aws.String(name), Value: aws.String(value)}
}

func datum(name string, value float64, unit string, dims []*cloudwatch.Dimension) *cloudwatch.MetricDatum {
	return &cloudwatch.MetricDatum{
		MetricName: aws.String(name),
		Dimensions: dims,
		Timestamp:  aws.Time(time.Now()),
		Value:      aws.Float64(value),
		Unit:       aws.String(unit),
	}
}

func (c *CloudWatch) put(data ...*cloudwatch.MetricDatum) {
	_, err := c.client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(c.namespace),
		MetricData: data,
	})
	if err != nil {
		logger.Error.Printf("[metrics.put] CloudWatch metric failed (%s): %v", aws.StringValue(data[0].MetricName), err)
	}
}
